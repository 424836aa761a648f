package api

import (
	"github.com/framepromptly/framepromptly/internal/config"
	"github.com/framepromptly/framepromptly/internal/infrastructure"
	"github.com/framepromptly/framepromptly/internal/workflow"
	"github.com/framepromptly/framepromptly/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration and the
// workflow runtime used for agent invocation.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Workflow   *workflow.Runtime
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	logger := infra.Logger.With("module", "api")

	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    logger,
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Pagination: cfg.API.Pagination,
		Workflow: &workflow.Runtime{
			Agent:  cfg.Agent,
			Logger: logger,
		},
	}
}
