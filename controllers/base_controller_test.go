package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"komreq-backend/models"
	apimodels "komreq-backend/models/api"
)

func TestSendError(t *testing.T) {
	cases := map[string]struct {
		err     error
		status  int
		message string
	}{
		"not found":    {models.NewNotFound("заявка не найдена"), fiber.StatusNotFound, "заявка не найдена"},
		"forbidden":    {models.NewForbidden("нет доступа"), fiber.StatusForbidden, "нет доступа"},
		"validation":   {models.NewValidation("ошибка"), fiber.StatusBadRequest, "ошибка"},
		"conflict":     {models.NewConflict("дубль"), fiber.StatusConflict, "дубль"},
		"unauthorized": {models.NewUnauthorized("неверный пароль"), fiber.StatusUnauthorized, "неверный пароль"},
		"wrapped":      {errors.Wrap(models.NewNotFound("файл не найден"), "ошибка"), fiber.StatusNotFound, "файл не найден"},
		"internal":     {errors.New("pq: connection refused"), fiber.StatusInternalServerError, "Ошибка операции"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := BaseAPIController{}
			app := fiber.New()
			app.Get("/", func(ctx *fiber.Ctx) error {
				return c.SendError(ctx, c.GetLogger(ctx), tc.err, "Ошибка операции")
			})
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)
			var body apimodels.Response
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, "fail", body.Status)
			require.Equal(t, tc.message, body.Message)
		})
	}
}

func TestGetID(t *testing.T) {
	c := BaseAPIController{}
	app := fiber.New()
	app.Get("/:id", func(ctx *fiber.Ctx) error {
		id, err := c.GetID(ctx)
		if err != nil {
			return ctx.SendStatus(fiber.StatusBadRequest)
		}
		return ctx.JSON(id)
	})
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/42", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, bad := range []string{"/abc", "/0", "/-1"} {
		resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, bad, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode, bad)
	}
}
