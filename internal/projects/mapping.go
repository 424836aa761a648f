package projects

import (
	"net/url"

	"github.com/framepromptly/framepromptly/pkg/query"
	"github.com/framepromptly/framepromptly/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "projects", "p").
	Project("id", "ID").
	Project("owner_id", "OwnerID").
	Project("name", "Name").
	Project("product_type", "ProductType").
	Project("project_stage", "ProjectStage").
	Project("framework", "Framework").
	Project("framework_stage", "FrameworkStage").
	Project("tool", "Tool").
	Project("context", "Context").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "UpdatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for project queries.
// Nil fields are ignored. Name uses case-insensitive contains matching;
// the rest use exact matching.
type Filters struct {
	OwnerID        *string `json:"owner_id,omitempty"`
	Name           *string `json:"name,omitempty"`
	ProductType    *string `json:"product_type,omitempty"`
	Framework      *string `json:"framework,omitempty"`
	FrameworkStage *string `json:"framework_stage,omitempty"`
	Tool           *string `json:"tool,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("OwnerID", f.OwnerID).
		WhereContains("Name", f.Name).
		WhereEquals("ProductType", f.ProductType).
		WhereEquals("Framework", f.Framework).
		WhereEquals("FrameworkStage", f.FrameworkStage).
		WhereEquals("Tool", f.Tool)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if o := values.Get("owner_id"); o != "" {
		f.OwnerID = &o
	}
	if n := values.Get("name"); n != "" {
		f.Name = &n
	}
	if pt := values.Get("product_type"); pt != "" {
		f.ProductType = &pt
	}
	if fw := values.Get("framework"); fw != "" {
		f.Framework = &fw
	}
	if fs := values.Get("framework_stage"); fs != "" {
		f.FrameworkStage = &fs
	}
	if tool := values.Get("tool"); tool != "" {
		f.Tool = &tool
	}

	return f
}

func scanProject(s repository.Scanner) (Project, error) {
	var p Project
	err := s.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.ProductType,
		&p.ProjectStage,
		&p.Framework,
		&p.FrameworkStage,
		&p.Tool,
		&p.Context,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
