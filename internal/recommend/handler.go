package recommend

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/framepromptly/framepromptly/internal/catalog"
	"github.com/framepromptly/framepromptly/internal/engine"
	"github.com/framepromptly/framepromptly/pkg/handlers"
	"github.com/framepromptly/framepromptly/pkg/routes"
)

// TemplateSource supplies the template pool scored by the template
// recommendation endpoint.
type TemplateSource interface {
	Library(ctx context.Context) ([]engine.Template, error)
}

// Handler provides HTTP endpoints for the recommendation engine. The engine
// itself is pure; the handler resolves catalog and template lookups at the
// boundary.
type Handler struct {
	templates TemplateSource
	logger    *slog.Logger
}

// FrameworksRequest wraps a recommendation context.
type FrameworksRequest struct {
	Context Context `json:"context"`
}

// NextStageRequest names a framework alongside a recommendation context.
type NextStageRequest struct {
	FrameworkID string  `json:"framework_id"`
	Context     Context `json:"context"`
}

// ToolsRequest names a framework stage alongside a recommendation context.
type ToolsRequest struct {
	FrameworkID string  `json:"framework_id"`
	StageID     string  `json:"stage_id"`
	Context     Context `json:"context"`
}

// TemplatesRequest names a tool alongside a recommendation context.
type TemplatesRequest struct {
	ToolID  string  `json:"tool_id"`
	Context Context `json:"context"`
}

// ArtifactsRequest carries free-text artifact content.
type ArtifactsRequest struct {
	Artifacts []string `json:"artifacts"`
}

// NewHandler creates a Handler with the given template source and logger.
func NewHandler(templates TemplateSource, logger *slog.Logger) *Handler {
	return &Handler{
		templates: templates,
		logger:    logger.With("handler", "recommendations"),
	}
}

// Routes returns the route group definition for recommendation endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/recommendations",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/frameworks", Handler: h.Frameworks},
			{Method: "POST", Pattern: "/next-stage", Handler: h.NextStage},
			{Method: "POST", Pattern: "/tools", Handler: h.Tools},
			{Method: "POST", Pattern: "/templates", Handler: h.Templates},
			{Method: "POST", Pattern: "/methods", Handler: h.Methods},
			{Method: "POST", Pattern: "/artifacts", Handler: h.Artifacts},
		},
	}
}

// Frameworks recommends UX frameworks for a project context.
func (h *Handler) Frameworks(w http.ResponseWriter, r *http.Request) {
	var req FrameworksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Frameworks(req.Context))
}

// NextStage recommends eligible next stages of the named framework.
func (h *Handler) NextStage(w http.ResponseWriter, r *http.Request) {
	var req NextStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	framework, err := catalog.Find(req.FrameworkID)
	if err != nil {
		handlers.RespondError(w, h.logger, catalog.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, NextStage(framework, req.Context))
}

// Tools recommends tools from the named framework stage.
func (h *Handler) Tools(w http.ResponseWriter, r *http.Request) {
	var req ToolsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	stage, err := catalog.FindStage(req.FrameworkID, req.StageID)
	if err != nil {
		handlers.RespondError(w, h.logger, catalog.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Tools(stage, req.Context))
}

// Templates recommends prompt templates relevant to the named tool.
func (h *Handler) Templates(w http.ResponseWriter, r *http.Request) {
	var req TemplatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	pool, err := h.templates.Library(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Templates(req.ToolID, pool, req.Context))
}

// Methods recommends all six prompting methods for a context.
func (h *Handler) Methods(w http.ResponseWriter, r *http.Request) {
	var req FrameworksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Methods(req.Context))
}

// Artifacts recommends a next move based on produced artifact content.
func (h *Handler) Artifacts(w http.ResponseWriter, r *http.Request) {
	var req ArtifactsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromArtifacts(req.Artifacts))
}
