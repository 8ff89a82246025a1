package webapi

import (
	"context"

	apimodels "survey-form/models/api"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type healthController struct {
	db Pinger
}

func InitHealthRouters(app fiber.Router, db Pinger) {
	controller := healthController{
		db: db,
	}
	app.Get("/health", controller.health)
}

// @Summary Проверка доступности
// @Tags Сервис
// @Description Проверяет соединение с БД
// @Produce json
// @Success 200 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /health [get]
func (c *healthController) health(ctx *fiber.Ctx) error {
	if err := c.db.Ping(ctx.UserContext()); err != nil {
		log.WithError(err).Warn("БД недоступна")
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError("БД недоступна"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
