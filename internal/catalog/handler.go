package catalog

import (
	"log/slog"
	"net/http"

	"github.com/framepromptly/framepromptly/pkg/handlers"
	"github.com/framepromptly/framepromptly/pkg/routes"
)

// Handler provides HTTP endpoints for catalog lookups.
type Handler struct {
	logger *slog.Logger
}

// NewHandler creates a Handler with the given logger.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger.With("handler", "frameworks"),
	}
}

// Routes returns the route group definition for catalog endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/frameworks",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "GET", Pattern: "/{id}/stages", Handler: h.Stages},
			{Method: "GET", Pattern: "/{id}/stages/{stage}", Handler: h.Stage},
			{Method: "GET", Pattern: "/{id}/stages/{stage}/tools", Handler: h.Tools},
		},
	}
}

// List returns every framework in the catalog.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Frameworks())
}

// Find returns a single framework by id.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	framework, err := Find(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, framework)
}

// Stages returns the ordered stages of a framework.
func (h *Handler) Stages(w http.ResponseWriter, r *http.Request) {
	framework, err := Find(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, framework.Stages)
}

// Stage returns a single stage of a framework.
func (h *Handler) Stage(w http.ResponseWriter, r *http.Request) {
	stage, err := FindStage(r.PathValue("id"), r.PathValue("stage"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stage)
}

// Tools returns the tools available in a framework stage.
func (h *Handler) Tools(w http.ResponseWriter, r *http.Request) {
	tools, err := StageTools(r.PathValue("id"), r.PathValue("stage"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, tools)
}
