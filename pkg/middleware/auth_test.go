package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/backoffice/pkg/config"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(secret string) *fiber.App {
	app := fiber.New()
	app.Use(JwtProtected(&config.Jwt{Secret: secret}))
	app.Get("/", func(c *fiber.Ctx) error {
		token := c.Locals("user").(*jwt.Token)
		sub, _ := token.Claims.GetSubject()
		return c.SendString(sub)
	})
	return app
}

func sign(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "ops",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJwtProtected_MissingToken(t *testing.T) {
	app := newProtectedApp("secret")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "missing or malformed JWT", body["error"])
}

func TestJwtProtected_ValidToken(t *testing.T) {
	app := newProtectedApp("secret")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+sign(t, "secret", time.Now().Add(time.Hour)))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJwtProtected_WrongSecretOrExpired(t *testing.T) {
	app := newProtectedApp("secret")
	for _, token := range []string{
		sign(t, "other", time.Now().Add(time.Hour)),
		sign(t, "secret", time.Now().Add(-time.Hour)),
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	}
}

func TestJwtError_Malformed(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		return jwtError(c, jwtware.ErrJWTMissingOrMalformed)
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJwtError_Invalid(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		return jwtError(c, errors.New("any other error"))
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
