package fiberlog

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Config настройки логирования запросов
type Config struct {
	// Logger если не задан, пишется в стандартный логгер logrus
	Logger *logrus.Logger
	Tags   []string
	// Skip запросы, для которых запись не нужна
	Skip func(c *fiber.Ctx) bool
}

var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		TagIP,
		TagUserID,
	},
	Skip: SkipPreflightAndWs,
}

// SkipPreflightAndWs preflight запросы и websocket соединения не логируются
func SkipPreflightAndWs(c *fiber.Ctx) bool {
	if c.Method() == fiber.MethodOptions {
		return true
	}
	return strings.HasSuffix(c.Path(), "/ws")
}
