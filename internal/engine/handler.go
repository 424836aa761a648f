package engine

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/framepromptly/framepromptly/pkg/handlers"
	"github.com/framepromptly/framepromptly/pkg/routes"
)

// Handler provides HTTP endpoints for prompt construction operations.
type Handler struct {
	logger *slog.Logger
}

// GeneratedPrompt is the response type for the generate endpoint.
type GeneratedPrompt struct {
	Prompt string `json:"prompt"`
}

// ValidateRequest pairs a template with candidate variable values.
type ValidateRequest struct {
	Template  Template       `json:"template"`
	Variables map[string]any `json:"variables"`
}

// ExtractRequest carries free text to scan for placeholders.
type ExtractRequest struct {
	Text string `json:"text"`
}

// ExtractedVariables is the response type for the extract endpoint.
type ExtractedVariables struct {
	Variables []string `json:"variables"`
}

// NewHandler creates a Handler with the given logger.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger.With("handler", "prompts"),
	}
}

// Routes returns the route group definition for prompt construction endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/prompts",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/methods", Handler: h.Methods},
			{Method: "GET", Pattern: "/variable-types", Handler: h.VariableTypes},
			{Method: "POST", Pattern: "/generate", Handler: h.Generate},
			{Method: "POST", Pattern: "/validate", Handler: h.Validate},
			{Method: "POST", Pattern: "/extract", Handler: h.Extract},
		},
	}
}

// Methods returns the list of valid prompting methods.
func (h *Handler) Methods(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Methods())
}

// VariableTypes returns the list of valid template variable types.
func (h *Handler) VariableTypes(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, VariableTypes())
}

// Generate builds the final prompt text for a JSON build configuration.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var cfg BuildConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	prompt, err := BuildPrompt(cfg)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, GeneratedPrompt{Prompt: prompt})
}

// Validate checks supplied variable values against a template's declared
// variables and returns the outcome as data.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ValidateVariables(req.Template, req.Variables))
}

// Extract returns the distinct placeholder names referenced in free text.
func (h *Handler) Extract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ExtractedVariables{Variables: ExtractVariables(req.Text)})
}
