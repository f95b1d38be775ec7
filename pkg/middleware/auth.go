package middleware

import (
	"errors"

	"github.com/amirasaad/backoffice/pkg/config"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtProtected requires a valid HS256 bearer token signed with cfg.Secret.
// The parsed token is stored in c.Locals("user").
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{
			JWTAlg: jwtware.HS256,
			Key:    []byte(cfg.Secret),
		},
		Claims:       &jwt.RegisteredClaims{},
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	msg := "invalid or expired JWT"
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
		msg = "missing or malformed JWT"
	}
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}
