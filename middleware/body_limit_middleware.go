package middleware

import (
	"github.com/gofiber/fiber/v2"
	apimodels "komreq-backend/models/api"
)

// WithBodyLimit отклоняет запрос по заголовку Content-Length до чтения тела
func WithBodyLimit(limit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if size := int64(c.Request().Header.ContentLength()); size > limit {
			return c.Status(fiber.StatusRequestEntityTooLarge).
				JSON(apimodels.NewError("превышен допустимый размер запроса"))
		}
		return c.Next()
	}
}
