package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// getLogrusFields calls FuncTag functions on matching keys
func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields)
	for k, ft := range ftm {
		value := ft(c, d)
		strValue, ok := value.(string)
		if ok {
			if strValue != "" {
				f[k] = strValue
			}
		} else {
			f[k] = value
		}
	}
	return f
}

// New creates a new middleware handler
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) == 0 {
		cfg = ConfigDefault
	} else {
		cfg = config[0]
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg)
	return func(c *fiber.Ctx) error {
		d := &data{pid: pid, start: time.Now()}
		err := c.Next()
		d.end = time.Now()
		if cfg.Skip != nil && cfg.Skip(c) {
			return err
		}

		var entity *log.Entry
		if cfg.Logger == nil {
			entity = log.WithFields(getLogrusFields(ftm, c, d))
		} else {
			entity = cfg.Logger.WithFields(getLogrusFields(ftm, c, d))
		}
		if c.Response().StatusCode() >= fiber.StatusBadRequest {
			entity.Warn(getMessage(c))
		} else {
			entity.Info(getMessage(c))
		}

		return err
	}
}

func getMessage(c *fiber.Ctx) string {
	if c.Route() != nil && c.Route().Path != "" {
		return "запрос api " + c.Route().Path
	}
	return "запрос api"
}
