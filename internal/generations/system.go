package generations

import (
	"context"

	"github.com/google/uuid"

	"github.com/framepromptly/framepromptly/internal/templates"
	"github.com/framepromptly/framepromptly/pkg/pagination"
)

// TemplateSource resolves stored templates for prompt construction.
// The templates System satisfies this interface.
type TemplateSource interface {
	Find(ctx context.Context, id uuid.UUID) (*templates.Template, error)
}

// System defines the generation lifecycle: build a prompt, enhance it
// through the workflow pipeline, and capture the AI response.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Generation], error)

	Find(ctx context.Context, id uuid.UUID) (*Generation, error)
	Create(ctx context.Context, cmd CreateCommand) (*Generation, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Enhance(ctx context.Context, id uuid.UUID, cmd EnhanceCommand) (*Generation, error)
	Respond(ctx context.Context, id uuid.UUID, cmd RespondCommand) (*RespondOutcome, error)
}
