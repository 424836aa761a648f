// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"context"
	"net/http"

	"github.com/framepromptly/framepromptly/internal/config"
	"github.com/framepromptly/framepromptly/internal/infrastructure"
	"github.com/framepromptly/framepromptly/pkg/middleware"
	"github.com/framepromptly/framepromptly/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(ctx context.Context, cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg, runtime)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Auth(ctx, &cfg.API.Auth))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
