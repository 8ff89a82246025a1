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
	message := cfg.Message
	if message == "" {
		message = "запрос"
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg)
	return func(c *fiber.Ctx) error {
		d := &data{pid: pid, start: time.Now()}
		// ошибку обрабатываем здесь, иначе статус ответа еще не выставлен
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return nil
		}

		var entry *log.Entry
		if cfg.Logger == nil {
			entry = log.WithFields(getLogrusFields(ftm, c, d))
		} else {
			entry = cfg.Logger.WithFields(getLogrusFields(ftm, c, d))
		}
		// редирект после отправки формы штатный
		if c.Response().StatusCode() >= fiber.StatusBadRequest {
			entry.Warn(message)
		} else {
			entry.Info(message)
		}
		return nil
	}
}
