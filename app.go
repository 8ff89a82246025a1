package main

import (
	"strings"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	webapi "survey-form/controllers/web"
	"survey-form/fiberlog"
	"survey-form/lib/question"
	"survey-form/middleware"
)

const swaggerPath = "/swagger"

type appConfig struct {
	BodyLimit     int64
	ErrNotifyAddr string
	SwaggerFile   string
	Logger        *fiberlog.Config
}

func newApp(cfg appConfig, handler question.Provider, pinger webapi.Pinger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: fiberlog.RequestID,
	}))
	if cfg.Logger != nil {
		app.Use(fiberlog.New(*cfg.Logger))
	}
	app.Use(middleware.ErrNotify(cfg.ErrNotifyAddr))
	// после логирования и уведомлений, чтобы паника попала в оба
	app.Use(fiberRecover.New())
	app.Use(middleware.WithBodyLimit(cfg.BodyLimit))

	if cfg.SwaggerFile != "" {
		app.Use(swagger.New(swagger.Config{
			Next: func(c *fiber.Ctx) bool {
				return !strings.HasPrefix(c.Path(), swaggerPath)
			},
			Path:     strings.TrimPrefix(swaggerPath, "/"),
			FilePath: cfg.SwaggerFile,
			Title:    "Survey form",
		}))
	}

	webapi.InitHealthRouters(app, pinger)
	webapi.InitSurveyFormRouters(app, handler)
	return app
}
