package server_test

import (
	"net/http/httptest"
	"testing"

	"tooltips/core/middleware/rayid"
	"tooltips/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_Middleware(t *testing.T) {
	app := server.New(server.Config{ApiKey: "secret"}, zap.NewNop())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	t.Run("MissingKey", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(rayid.HeaderName))
	})

	t.Run("ValidKey", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-API-Key", "secret")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
