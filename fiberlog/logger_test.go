package fiberlog

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger, hook := test.NewNullLogger()
	app := fiber.New()
	app.Use(New(Config{
		Logger: logger,
		Tags:   []string{TagStatus, TagMethod, TagPath},
		Skip:   SkipPreflightAndWs,
	}))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/bad", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })
	app.Get("/api/v1/ws", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusUpgradeRequired) })

	t.Run("success is info", func(t *testing.T) {
		hook.Reset()
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ok", nil))
		require.NoError(t, err)
		require.Len(t, hook.AllEntries(), 1)
		entry := hook.LastEntry()
		require.Equal(t, logrus.InfoLevel, entry.Level)
		require.Equal(t, "запрос api /ok", entry.Message)
		require.Equal(t, fiber.StatusOK, entry.Data[TagStatus])
		require.Equal(t, fiber.MethodGet, entry.Data[TagMethod])
	})

	t.Run("client error is warn", func(t *testing.T) {
		hook.Reset()
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/bad", nil))
		require.NoError(t, err)
		require.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	})

	t.Run("ws is skipped", func(t *testing.T) {
		hook.Reset()
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/ws", nil))
		require.NoError(t, err)
		require.Empty(t, hook.AllEntries())
	})
}
