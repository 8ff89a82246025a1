package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid      = "pid"
	TagStatus   = "status"
	TagLatency  = "latency"
	TagMethod   = "method"
	TagPath     = "path"
	TagIP       = "ip"
	TagBody     = "body"
	TagResBody  = "resBody"
	TagReferer  = "referer"
	TagLocation = "location"
	RequestID   = "request_id"
)

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag значение поля лога для запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(_ *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Response().StatusCode()
		},
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Path()
		},
		TagIP: func(c *fiber.Ctx, _ *data) interface{} {
			return c.IP()
		},
		TagBody: func(c *fiber.Ctx, _ *data) interface{} {
			return string(c.Body())
		},
		TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
			return string(c.Response().Body())
		},
		TagReferer: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Get(fiber.HeaderReferer)
		},
		TagLocation: func(c *fiber.Ctx, _ *data) interface{} {
			return string(c.Response().Header.Peek(fiber.HeaderLocation))
		},
		RequestID: func(c *fiber.Ctx, _ *data) interface{} {
			if id, ok := c.Locals(RequestID).(string); ok && id != "" {
				return id
			}
			return c.GetRespHeader(fiber.HeaderXRequestID)
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}
