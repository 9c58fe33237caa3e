package middleware

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	apimodels "komreq-backend/models/api"
)

type errNotifyPayload struct {
	Service string `json:"service"`
	Code    int    `json:"code"`
	Method  string `json:"method"`
	Path    string `json:"path"`
	UserID  string `json:"user_id"`
	Error   string `json:"error"`
}

// ErrNotify отправляет ответы 5xx на внешний адрес, без адреса ничего не делает
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if addr == "" {
			return err
		}
		statusCode := c.Response().StatusCode()
		if statusCode < fiber.StatusInternalServerError {
			return err
		}

		payload := errNotifyPayload{
			Service: "komreq",
			Code:    statusCode,
			Method:  c.Method(),
			Path:    c.OriginalURL(),
			UserID:  GetUserID(c),
		}
		if r := c.Route(); r != nil {
			payload.Path = r.Path
		}
		var resp apimodels.Response
		if unmErr := json.Unmarshal(c.Response().Body(), &resp); unmErr != nil || resp.Message == "" {
			payload.Error = string(c.Response().Body())
		} else {
			payload.Error = resp.Message
		}

		go func() {
			code, _, errs := fiber.Post(addr).JSON(payload).Bytes()
			if len(errs) > 0 {
				log.WithError(errs[0]).Warn("ошибка отправки уведомления об ошибке")
				return
			}
			if code >= fiber.StatusBadRequest {
				log.WithField("status", code).Warn("сервис уведомлений об ошибках вернул ошибку")
			}
		}()
		return err
	}
}
