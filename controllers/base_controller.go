package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"komreq-backend/middleware"
	"komreq-backend/models"
	apimodels "komreq-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) QueryParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.QueryParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания параметров запроса")
		return errors.New("не удалось получить параметры запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (uint, error) {
	return c.GetUintParam(ctx, "id")
}

func (c *BaseAPIController) GetUintParam(ctx *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.ParseUint(ctx.Params(name), 10, 64)
	if err != nil || value == 0 {
		return 0, errors.Errorf("некорректный параметр %s", name)
	}
	return uint(value), nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.WithFields(log.Fields{
		"user_id": middleware.GetUserID(ctx),
		"method":  ctx.Method(),
		"path":    ctx.Path(),
	})
}

// SendError ошибки бизнес-логики отдаются пользователю, остальные логируются
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	herr, ok := models.AsHandlerError(err)
	if !ok {
		logger.WithError(err).Error(msg)
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
	}
	status := fiber.StatusInternalServerError
	switch herr.Kind {
	case models.NotFoundError:
		status = fiber.StatusNotFound
	case models.ForbiddenError:
		status = fiber.StatusForbidden
	case models.ValidationError:
		status = fiber.StatusBadRequest
	case models.ConflictError:
		status = fiber.StatusConflict
	case models.UnauthorizedError:
		status = fiber.StatusUnauthorized
	}
	logger.WithField("status", status).Info(herr.Message)
	return ctx.Status(status).JSON(apimodels.NewError(herr.Message))
}
