package webapi

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	apimodels "survey-form/models/api"
)

type pingerMock struct {
	err error
}

func (p pingerMock) Ping(_ context.Context) error {
	return p.err
}

func TestHealthApi(t *testing.T) {
	t.Run(`db available check`, func(t *testing.T) {
		app := fiber.New()
		InitHealthRouters(app, pingerMock{})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil), -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var body apimodels.Response
		require.Nil(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, "success", body.Status)
	})

	t.Run(`db unavailable check`, func(t *testing.T) {
		app := fiber.New()
		InitHealthRouters(app, pingerMock{err: errors.New("server selection timeout")})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil), -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
		var body apimodels.Response
		require.Nil(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, "fail", body.Status)
		require.Equal(t, "БД недоступна", body.Message)
	})
}
