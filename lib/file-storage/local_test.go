package filestorage

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	storage := NewLocalInstance(t.TempDir())

	t.Run("save, get, delete", func(t *testing.T) {
		body := []byte("акт приемки")
		path, err := storage.Save(ctx, "act.txt", bytes.NewReader(body), int64(len(body)), "text/plain")
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(path, "_act.txt"))

		got, err := storage.Get(ctx, path)
		require.NoError(t, err)
		require.Equal(t, body, got)

		require.NoError(t, storage.Delete(ctx, path))
		_, err = storage.Get(ctx, path)
		require.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("path traversal rejected", func(t *testing.T) {
		_, err := storage.Get(ctx, "../secret.txt")
		require.Error(t, err)
	})

	t.Run("double dots inside a name", func(t *testing.T) {
		body := []byte("v2")
		path, err := storage.Save(ctx, "report..v2.pdf", bytes.NewReader(body), int64(len(body)), "application/pdf")
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(path, "_report..v2.pdf"))

		got, err := storage.Get(ctx, path)
		require.NoError(t, err)
		require.Equal(t, body, got)
		require.NoError(t, storage.Delete(ctx, path))
		_, err = storage.Get(ctx, path)
		require.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("nested traversal rejected", func(t *testing.T) {
		require.Error(t, storage.Delete(ctx, "a/../../secret.txt"))
		_, err := storage.Get(ctx, "..")
		require.Error(t, err)
	})

	t.Run("stored name drops directories", func(t *testing.T) {
		name := StoredName("../../etc/passwd")
		require.True(t, strings.HasSuffix(name, "_passwd"))
		require.NotContains(t, name, "/")
	})
}
