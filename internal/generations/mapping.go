package generations

import (
	"net/url"

	"github.com/framepromptly/framepromptly/pkg/query"
	"github.com/framepromptly/framepromptly/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "generations", "g").
	Project("id", "ID").
	Project("project_id", "ProjectID").
	Project("template_id", "TemplateID").
	Project("method", "Method").
	Project("framework", "Framework").
	Project("framework_stage", "FrameworkStage").
	Project("tool", "Tool").
	Project("prompt", "Prompt").
	Project("enhanced_prompt", "EnhancedPrompt").
	Project("ai_response", "AIResponse").
	Project("status", "Status").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for generation queries.
// Nil fields are ignored; all filters use exact matching.
type Filters struct {
	ProjectID      *string `json:"project_id,omitempty"`
	Method         *string `json:"method,omitempty"`
	Framework      *string `json:"framework,omitempty"`
	FrameworkStage *string `json:"framework_stage,omitempty"`
	Tool           *string `json:"tool,omitempty"`
	Status         *string `json:"status,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("ProjectID", f.ProjectID).
		WhereEquals("Method", f.Method).
		WhereEquals("Framework", f.Framework).
		WhereEquals("FrameworkStage", f.FrameworkStage).
		WhereEquals("Tool", f.Tool).
		WhereEquals("Status", f.Status)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if p := values.Get("project_id"); p != "" {
		f.ProjectID = &p
	}
	if m := values.Get("method"); m != "" {
		f.Method = &m
	}
	if fw := values.Get("framework"); fw != "" {
		f.Framework = &fw
	}
	if s := values.Get("framework_stage"); s != "" {
		f.FrameworkStage = &s
	}
	if t := values.Get("tool"); t != "" {
		f.Tool = &t
	}
	if st := values.Get("status"); st != "" {
		f.Status = &st
	}

	return f
}

func scanGeneration(s repository.Scanner) (Generation, error) {
	var g Generation

	err := s.Scan(
		&g.ID,
		&g.ProjectID,
		&g.TemplateID,
		&g.Method,
		&g.Framework,
		&g.FrameworkStage,
		&g.Tool,
		&g.Prompt,
		&g.EnhancedPrompt,
		&g.AIResponse,
		&g.Status,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	return g, err
}
