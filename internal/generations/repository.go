package generations

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/framepromptly/framepromptly/internal/engine"
	"github.com/framepromptly/framepromptly/internal/workflow"
	"github.com/framepromptly/framepromptly/pkg/pagination"
	"github.com/framepromptly/framepromptly/pkg/query"
	"github.com/framepromptly/framepromptly/pkg/repository"
)

type repo struct {
	db         *sql.DB
	templates  TemplateSource
	runtime    *workflow.Runtime
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a generation repository implementing the System interface.
func New(
	db *sql.DB,
	templates TemplateSource,
	runtime *workflow.Runtime,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		templates:  templates,
		runtime:    runtime,
		logger:     logger.With("system", "generations"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Generation], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Prompt", "Framework", "Tool")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count generations: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanGeneration)
	if err != nil {
		return nil, fmt.Errorf("query generations: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Generation, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	g, err := repository.QueryOne(ctx, r.db, q, args, scanGeneration)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &g, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Generation, error) {
	method := cmd.Method
	var tpl engine.Template

	if cmd.TemplateID != nil {
		stored, err := r.templates.Find(ctx, *cmd.TemplateID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrTemplate, *cmd.TemplateID)
		}
		tpl = stored.ToEngine()
		method = tpl.Method
	} else if _, err := engine.ParseMethod(string(method)); err != nil {
		return nil, err
	}

	prompt, err := engine.BuildPrompt(engine.BuildConfig{
		Method:        method,
		Template:      tpl,
		Variables:     cmd.Variables,
		Context:       cmd.Context,
		FrameworkType: cmd.Framework,
		Examples:      cmd.Examples,
	})
	if err != nil {
		return nil, err
	}

	q := `
		INSERT INTO generations(id, project_id, template_id, method, framework, framework_stage, tool, prompt, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, project_id, template_id, method, framework, framework_stage, tool, prompt, enhanced_prompt, ai_response, status, created_at, updated_at`

	insertArgs := []any{
		uuid.New(),
		cmd.ProjectID,
		cmd.TemplateID,
		method,
		cmd.Framework,
		cmd.FrameworkStage,
		cmd.Tool,
		prompt,
		StatusDraft,
	}

	g, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Generation, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanGeneration)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("generation created", "id", g.ID, "project", g.ProjectID, "method", g.Method)
	return &g, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM generations WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("generation deleted", "id", id)
	return nil
}

func (r *repo) Enhance(ctx context.Context, id uuid.UUID, cmd EnhanceCommand) (*Generation, error) {
	g, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := workflow.Enhance(ctx, r.runtime, workflow.EnhanceRequest{
		Prompt:         g.Prompt,
		AITool:         cmd.AITool,
		Tool:           g.Tool,
		Framework:      g.Framework,
		FrameworkStage: g.FrameworkStage,
	})
	if err != nil {
		return nil, err
	}

	return r.persistEnhancement(ctx, id, result.EnhancedPrompt)
}

func (r *repo) Respond(ctx context.Context, id uuid.UUID, cmd RespondCommand) (*RespondOutcome, error) {
	g, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	prompt := g.Prompt
	if g.EnhancedPrompt != nil && *g.EnhancedPrompt != "" {
		prompt = *g.EnhancedPrompt
	}

	result, err := workflow.Respond(ctx, r.runtime, workflow.RespondRequest{
		Prompt:            prompt,
		ProjectContext:    cmd.ProjectContext,
		SelectedFramework: g.Framework,
		FrameworkStage:    g.FrameworkStage,
		SelectedTool:      g.Tool,
		AIModel:           cmd.AIModel,
		AITool:            cmd.AITool,
	})
	if err != nil {
		return nil, err
	}

	// A provider-reported failure is data, not an error. The generation
	// keeps its current status until a response actually lands.
	if result.AIResponse == "" {
		return &RespondOutcome{Generation: g, Error: result.Error}, nil
	}

	updated, err := r.persistResponse(ctx, id, result.AIResponse)
	if err != nil {
		return nil, err
	}
	return &RespondOutcome{Generation: updated, Error: result.Error}, nil
}

func (r *repo) persistEnhancement(ctx context.Context, id uuid.UUID, enhanced string) (*Generation, error) {
	q := `
		UPDATE generations
		SET enhanced_prompt = $2, status = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, project_id, template_id, method, framework, framework_stage, tool, prompt, enhanced_prompt, ai_response, status, created_at, updated_at`

	g, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Generation, error) {
		return repository.QueryOne(ctx, tx, q, []any{id, enhanced, StatusEnhanced}, scanGeneration)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("generation enhanced", "id", g.ID)
	return &g, nil
}

func (r *repo) persistResponse(ctx context.Context, id uuid.UUID, response string) (*Generation, error) {
	q := `
		UPDATE generations
		SET ai_response = $2, status = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, project_id, template_id, method, framework, framework_stage, tool, prompt, enhanced_prompt, ai_response, status, created_at, updated_at`

	g, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Generation, error) {
		return repository.QueryOne(ctx, tx, q, []any{id, response, StatusResponded}, scanGeneration)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("generation responded", "id", g.ID)
	return &g, nil
}
