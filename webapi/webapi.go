// Package webapi provides the HTTP surface of the back office.
// It is organized into sub-packages per resource:
//   - person: person registration and lookup
//   - account: account opening, queries and blocking
//   - transaction: deposits, withdrawals and statements
package webapi

import (
	"strings"

	"github.com/amirasaad/backoffice/pkg/app"
	"github.com/amirasaad/backoffice/pkg/middleware"
	accountweb "github.com/amirasaad/backoffice/webapi/account"
	"github.com/amirasaad/backoffice/webapi/common"
	personweb "github.com/amirasaad/backoffice/webapi/person"
	transactionweb "github.com/amirasaad/backoffice/webapi/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"

	_ "github.com/amirasaad/backoffice/cmd/server/swagger"
)

// SwaggerIndex is where unknown GET paths are redirected.
const SwaggerIndex = "/swagger/index.html"

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	cfg := a.Config

	fiberApp := fiber.New(fiber.Config{
		AppName:      "backoffice",
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: common.ErrorHandler,
	})

	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if cfg.Env != "test" {
		fiberApp.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	fiberApp.Use(helmet.New())
	fiberApp.Use(cors.New())

	// Uses X-Forwarded-For header when behind a proxy
	// Falls back to X-Real-IP or direct IP if needed
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		Storage:    a.Deps.RateLimitStorage,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorJSON(c, fiber.StatusTooManyRequests, "rate limit exceeded")
		},
	}))

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Backoffice API is running")
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		PersistAuthorization: true,
	}))

	v1 := fiberApp.Group("/v1")
	if cfg.Auth.Enabled() {
		v1.Use(middleware.JwtProtected(cfg.Auth.Jwt))
	}
	personweb.Routes(v1, a.PersonService)
	accountweb.Routes(v1, a.AccountService)
	transactionweb.Routes(v1, a.TransactionService)

	fiberApp.Get("/*", func(c *fiber.Ctx) error {
		return c.Redirect(SwaggerIndex, fiber.StatusFound)
	})
	fiberApp.Use(func(c *fiber.Ctx) error {
		return common.ErrorJSON(c, fiber.StatusNotFound, "Cannot "+c.Method()+" "+c.Path())
	})
	return fiberApp
}
