package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/maheshrc27/postflow-tools/configs"
	"github.com/maheshrc27/postflow-tools/pkg/utils"
)

func newApp(secret string) *fiber.App {
	app := fiber.New()
	app.Use(NewAuthMiddleware(config.Config{SecretKey: secret}).AuthMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		clientID, _ := c.Locals("client_id").(string)
		return c.SendString(clientID)
	})
	return app
}

func status(t *testing.T, app *fiber.App, req *http.Request) int {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestAuthMiddleware_DisabledWithoutSecret(t *testing.T) {
	app := newApp("")
	assert.Equal(t, http.StatusOK, status(t, app, httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	app := newApp("s3cret")
	assert.Equal(t, http.StatusUnauthorized, status(t, app, httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestAuthMiddleware_BearerHeader(t *testing.T) {
	token, err := utils.GenerateToken("s3cret", "agent", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	assert.Equal(t, http.StatusOK, status(t, newApp("s3cret"), req))
}

func TestAuthMiddleware_QueryParameter(t *testing.T) {
	token, err := utils.GenerateToken("s3cret", "agent", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/?api_key="+token, nil)
	assert.Equal(t, http.StatusOK, status(t, newApp("s3cret"), req))
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	assert.Equal(t, http.StatusUnauthorized, status(t, newApp("s3cret"), req))
}
