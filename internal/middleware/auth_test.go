package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/opsdesk/backend/internal/auth"
	"github.com/opsdesk/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Use(RequestIDMiddleware())
	app.Get("/me", AuthMiddleware(cfg, zap.NewNop()), AdminMiddleware(), func(c *fiber.Ctx) error {
		return c.SendString(GetUserID(c).String() + " " + GetRole(c))
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	app := newAuthApp(cfg)
	userID := uuid.New()

	adminTok, err := auth.GenerateJWT("secret", userID, "admin", time.Hour)
	require.NoError(t, err)
	employeeTok, err := auth.GenerateJWT("secret", userID, "employee", time.Hour)
	require.NoError(t, err)
	managerTok, err := auth.GenerateJWT("secret", userID, "manager", time.Hour)
	require.NoError(t, err)
	hrTok, err := auth.GenerateJWT("secret", userID, "hr", time.Hour)
	require.NoError(t, err)
	foreignTok, err := auth.GenerateJWT("other-secret", userID, "admin", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"no bearer prefix", adminTok, fiber.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreignTok, fiber.StatusUnauthorized},
		{"not admin", "Bearer " + employeeTok, fiber.StatusForbidden},
		{"manager has no audit access", "Bearer " + managerTok, fiber.StatusForbidden},
		{"hr", "Bearer " + hrTok, fiber.StatusOK},
		{"admin", "Bearer " + adminTok, fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
		})
	}
}

func TestRequestIDPassthrough(t *testing.T) {
	app := fiber.New()
	app.Use(RequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(GetRequestID(c)) })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("x", maxRequestIDLen+1))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	_, err = uuid.Parse(resp.Header.Get("X-Request-ID"))
	assert.NoError(t, err)
}
