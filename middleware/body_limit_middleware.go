package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// WithBodyLimit отклоняет запросы с Content-Length больше limit
func WithBodyLimit(limit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limit <= 0 {
			return c.Next()
		}
		size := int64(c.Request().Header.ContentLength())
		if size > limit {
			return c.Status(fiber.StatusRequestEntityTooLarge).
				SendString(fmt.Sprintf("Размер запроса превышает допустимый: %d байт", limit))
		}
		return c.Next()
	}
}
