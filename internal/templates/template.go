// Package templates implements the prompt template store: user-authored and
// built-in library templates persisted in Postgres, exposed to the prompt
// construction pipeline and the recommendation engine.
package templates

import (
	"time"

	"github.com/google/uuid"

	"github.com/framepromptly/framepromptly/internal/engine"
)

// Template represents a stored prompt template. Built-in library entries
// have no owner and cannot be modified through the API.
type Template struct {
	ID          uuid.UUID         `json:"id"`
	OwnerID     *string           `json:"owner_id,omitempty"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Body        string            `json:"body"`
	Method      engine.Method     `json:"method"`
	Category    string            `json:"category"`
	Tags        []string          `json:"tags"`
	Variables   []engine.Variable `json:"variables"`
	Builtin     bool              `json:"builtin"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ToEngine converts a stored template to the value shape consumed by the
// prompt construction pipeline.
func (t Template) ToEngine() engine.Template {
	return engine.Template{
		ID:          t.ID.String(),
		Name:        t.Name,
		Description: t.Description,
		Body:        t.Body,
		Method:      t.Method,
		Category:    t.Category,
		Tags:        t.Tags,
		Variables:   t.Variables,
	}
}

// CreateCommand carries the data needed to create a template.
type CreateCommand struct {
	OwnerID     *string           `json:"owner_id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Body        string            `json:"body"`
	Method      engine.Method     `json:"method"`
	Category    string            `json:"category"`
	Tags        []string          `json:"tags"`
	Variables   []engine.Variable `json:"variables"`
}

// UpdateCommand carries the data needed to update a template.
type UpdateCommand struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Body        string            `json:"body"`
	Method      engine.Method     `json:"method"`
	Category    string            `json:"category"`
	Tags        []string          `json:"tags"`
	Variables   []engine.Variable `json:"variables"`
}
