package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirasaad/backoffice/infra/initializer"
	"github.com/amirasaad/backoffice/pkg/app"
	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/webapi"
	log "github.com/charmbracelet/log"
)

//go:generate swag init -g main.go -d ./,../../webapi,../../pkg/dto -o ./swagger --outputTypes go --parseDependency

// @title Backoffice API
// @version 1.0.0
// @description Persons, accounts and their ledger
// @license.name MIT
// @host localhost:3000
// @BasePath /v1
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, config.GetEnv("ENV_FILE", ".env")); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, envFiles ...string) (err error) {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if cerr := deps.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	logger := deps.Logger

	fiberApp := webapi.SetupApp(app.New(deps, cfg))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
		"auth_enabled", cfg.Auth.Enabled(),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- fiberApp.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", "timeout", cfg.Server.ShutdownTimeout)
	if err := fiberApp.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return <-errCh
}
