// Package handler exposes the API as a single net/http handler for
// serverless platforms.
package handler

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/amirasaad/backoffice/infra/initializer"
	"github.com/amirasaad/backoffice/pkg/app"
	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

var (
	once    sync.Once
	handler http.HandlerFunc
)

// Handler is the main entry point of the application.
// Think of it like the main() method
func Handler(w http.ResponseWriter, r *http.Request) {
	// This is needed to set the proper request path in `*fiber.Ctx`
	r.RequestURI = r.URL.String()

	once.Do(func() { handler = build() })
	handler.ServeHTTP(w, r)
}

// build wires the application once per process. Configuration or
// connection failures are reported on every request as 503.
func build() http.HandlerFunc {
	cfg, err := config.Load()
	if err != nil {
		return unavailable(err)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return unavailable(err)
	}
	return adaptor.FiberApp(webapi.SetupApp(app.New(deps, cfg)))
}

func unavailable(err error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"service unavailable"}`))
		slog.Error("Failed to initialize application", "error", err)
	}
}
