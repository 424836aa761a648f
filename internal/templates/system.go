package templates

import (
	"context"

	"github.com/google/uuid"

	"github.com/framepromptly/framepromptly/internal/engine"
	"github.com/framepromptly/framepromptly/pkg/pagination"
)

// System defines the public contract for template domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Template], error)

	Find(ctx context.Context, id uuid.UUID) (*Template, error)
	Create(ctx context.Context, cmd CreateCommand) (*Template, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Template, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Library returns every stored template in the engine's value shape,
	// for consumption by the recommendation engine and build pipeline.
	Library(ctx context.Context) ([]engine.Template, error)
}
