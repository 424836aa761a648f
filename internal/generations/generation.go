package generations

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/framepromptly/framepromptly/internal/engine"
)

// Status tracks how far a generation has moved through the pipeline.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusEnhanced  Status = "enhanced"
	StatusResponded Status = "responded"
)

// Statuses lists every valid generation status.
var Statuses = []Status{
	StatusDraft,
	StatusEnhanced,
	StatusResponded,
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	status, err := ParseStatus(raw)
	if err != nil {
		return err
	}

	*s = status
	return nil
}

// ParseStatus converts a string into a Status, returning ErrInvalidStatus
// for unrecognized values.
func ParseStatus(raw string) (Status, error) {
	for _, status := range Statuses {
		if string(status) == raw {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidStatus, raw)
}

// Generation is a prompt built for a project stage, together with the
// enhancement and AI response produced from it.
type Generation struct {
	ID             uuid.UUID     `json:"id"`
	ProjectID      uuid.UUID     `json:"project_id"`
	TemplateID     *uuid.UUID    `json:"template_id,omitempty"`
	Method         engine.Method `json:"method"`
	Framework      string        `json:"framework"`
	FrameworkStage string        `json:"framework_stage"`
	Tool           string        `json:"tool"`
	Prompt         string        `json:"prompt"`
	EnhancedPrompt *string       `json:"enhanced_prompt,omitempty"`
	AIResponse     *string       `json:"ai_response,omitempty"`
	Status         Status        `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// CreateCommand carries the data needed to build and persist a generation.
// When TemplateID is set, the stored template supplies the method and body;
// otherwise Method is required and the skeleton is built without a template.
type CreateCommand struct {
	ProjectID      uuid.UUID      `json:"project_id"`
	TemplateID     *uuid.UUID     `json:"template_id,omitempty"`
	Method         engine.Method  `json:"method"`
	Framework      string         `json:"framework"`
	FrameworkStage string         `json:"framework_stage"`
	Tool           string         `json:"tool"`
	Variables      map[string]any `json:"variables"`
	Context        string         `json:"context"`
	Examples       []string       `json:"examples"`
}

// EnhanceCommand carries optional invocation context for prompt enhancement.
type EnhanceCommand struct {
	AITool string `json:"aiTool"`
}

// RespondCommand carries invocation context for AI response generation.
type RespondCommand struct {
	ProjectContext string `json:"projectContext"`
	AIModel        string `json:"aiModel"`
	AITool         string `json:"aiTool"`
}

// RespondOutcome pairs the persisted generation with any error the provider
// reported as part of its structured response.
type RespondOutcome struct {
	Generation *Generation `json:"generation"`
	Error      string      `json:"error,omitempty"`
}
