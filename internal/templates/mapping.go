package templates

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/framepromptly/framepromptly/internal/engine"
	"github.com/framepromptly/framepromptly/pkg/query"
	"github.com/framepromptly/framepromptly/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "templates", "t").
	Project("id", "ID").
	Project("owner_id", "OwnerID").
	Project("name", "Name").
	Project("description", "Description").
	Project("body", "Body").
	Project("method", "Method").
	Project("category", "Category").
	Project("tags", "Tags").
	Project("variables", "Variables").
	Project("builtin", "Builtin").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "UpdatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for template queries.
// Nil fields are ignored. Method, Category, OwnerID, and Builtin use exact
// matching; Name uses case-insensitive contains matching; Tag matches any
// element of the tags array.
type Filters struct {
	Name     *string `json:"name,omitempty"`
	Method   *string `json:"method,omitempty"`
	Category *string `json:"category,omitempty"`
	Tag      *string `json:"tag,omitempty"`
	OwnerID  *string `json:"owner_id,omitempty"`
	Builtin  *bool   `json:"builtin,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Name", f.Name).
		WhereEquals("Method", f.Method).
		WhereEquals("Category", f.Category).
		WhereArrayHas("Tags", f.Tag).
		WhereEquals("OwnerID", f.OwnerID).
		WhereEquals("Builtin", f.Builtin)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if n := values.Get("name"); n != "" {
		f.Name = &n
	}
	if m := values.Get("method"); m != "" {
		f.Method = &m
	}
	if c := values.Get("category"); c != "" {
		f.Category = &c
	}
	if tag := values.Get("tag"); tag != "" {
		f.Tag = &tag
	}
	if o := values.Get("owner_id"); o != "" {
		f.OwnerID = &o
	}
	if b := values.Get("builtin"); b != "" {
		builtin := b == "true"
		f.Builtin = &builtin
	}

	return f
}

// tagList maps a Postgres text[] column to []string through database/sql.
type tagList []string

func (t *tagList) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*t = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into tagList", src)
	}

	raw = strings.TrimPrefix(raw, "{")
	raw = strings.TrimSuffix(raw, "}")
	if raw == "" {
		*t = tagList{}
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make(tagList, 0, len(parts))
	for _, part := range parts {
		tags = append(tags, strings.Trim(part, `"`))
	}
	*t = tags
	return nil
}

func (t tagList) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "{}", nil
	}

	quoted := make([]string, len(t))
	for i, tag := range t {
		quoted[i] = `"` + strings.ReplaceAll(tag, `"`, `\"`) + `"`
	}
	return "{" + strings.Join(quoted, ",") + "}", nil
}

func scanTemplate(s repository.Scanner) (Template, error) {
	var (
		t         Template
		tags      tagList
		variables []byte
	)

	err := s.Scan(
		&t.ID,
		&t.OwnerID,
		&t.Name,
		&t.Description,
		&t.Body,
		&t.Method,
		&t.Category,
		&tags,
		&variables,
		&t.Builtin,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return t, err
	}

	t.Tags = tags
	if len(variables) > 0 {
		if err := json.Unmarshal(variables, &t.Variables); err != nil {
			return t, fmt.Errorf("decode template variables: %w", err)
		}
	}
	return t, nil
}

func encodeVariables(variables []engine.Variable) (string, error) {
	if variables == nil {
		variables = []engine.Variable{}
	}
	data, err := json.Marshal(variables)
	if err != nil {
		return "", fmt.Errorf("encode template variables: %w", err)
	}
	return string(data), nil
}
