package smtp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSmtp(t *testing.T) {
	t.Run("not configured client returns error", func(t *testing.T) {
		require.NoError(t, Connect("", "", "", "", true))
		require.False(t, Instance.IsConfigured())
		require.Error(t, Instance.SendEMail("client@komreq.local", "Заявка #1", "Статус изменен"))
	})

	t.Run("message headers", func(t *testing.T) {
		msg := buildMessage("robot@komreq.local", "client@komreq.local", "Заявка #1", "Статус изменен")
		require.True(t, strings.HasPrefix(msg, "From: robot@komreq.local\r\n"))
		require.Contains(t, msg, "Subject: KomReq - Заявка #1\r\n")
		require.True(t, strings.HasSuffix(msg, "\r\n\r\nСтатус изменен\r\n"))
	})
}
