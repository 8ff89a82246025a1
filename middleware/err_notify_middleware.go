package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type errNotifyPayload struct {
	Code   int    `json:"code"`
	Method string `json:"method"`
	Path   string `json:"path"`
	Error  string `json:"error"`
}

// ErrNotify отправляет на addr сведения об ответах 5xx, при пустом addr ничего не делает
func ErrNotify(addr string) fiber.Handler {
	client := &http.Client{Timeout: 5 * time.Second}
	return func(c *fiber.Ctx) error {
		if addr == "" {
			return c.Next()
		}
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		statusCode := c.Response().StatusCode()
		if statusCode < fiber.StatusInternalServerError {
			return nil
		}

		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}
		// payload собираем до горутины, fasthttp переиспользует буферы
		payload, mErr := json.Marshal(errNotifyPayload{
			Code:   statusCode,
			Method: c.Method(),
			Path:   path,
			Error:  string(c.Response().Body()),
		})
		if mErr != nil {
			log.WithError(mErr).Warn("error marshalling error notification")
			return nil
		}

		go func() {
			resp, reqErr := client.Post(addr, fiber.MIMEApplicationJSON, strings.NewReader(string(payload)))
			if reqErr != nil {
				log.WithError(reqErr).Warn("error sending error notification")
				return
			}
			_ = resp.Body.Close()
		}()
		return nil
	}
}
