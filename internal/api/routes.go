package api

import (
	"net/http"

	"github.com/framepromptly/framepromptly/internal/catalog"
	"github.com/framepromptly/framepromptly/internal/config"
	"github.com/framepromptly/framepromptly/internal/engine"
	"github.com/framepromptly/framepromptly/internal/recommend"
	"github.com/framepromptly/framepromptly/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	routes.Register(
		mux,
		engine.NewHandler(runtime.Logger).Routes(),
		catalog.NewHandler(runtime.Logger).Routes(),
		recommend.NewHandler(domain.Templates, runtime.Logger).Routes(),
		domain.Templates.Handler().Routes(),
		domain.Projects.Handler().Routes(),
		domain.Generations.Handler().Routes(),
		domain.Documents.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
	)
}
