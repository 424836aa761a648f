package query_test

import (
	"strings"
	"testing"

	"github.com/framepromptly/framepromptly/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.
		NewProjectionMap("public", "templates", "t").
		Project("id", "ID").
		Project("name", "Name").
		Project("category", "Category").
		Project("tags", "Tags")
}

func TestParseSortFields(t *testing.T) {
	fields := query.ParseSortFields("name,-created_at")

	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Field != "name" || fields[0].Descending {
		t.Errorf("unexpected first field: %+v", fields[0])
	}
	if fields[1].Field != "created_at" || !fields[1].Descending {
		t.Errorf("unexpected second field: %+v", fields[1])
	}

	if query.ParseSortFields("") != nil {
		t.Error("expected nil for empty input")
	}
}

func TestBuildNoConditions(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).Build()

	want := "SELECT t.id, t.name, t.category, t.tags FROM public.templates t"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %d", len(args))
	}
}

func TestBuildParameterNumbering(t *testing.T) {
	name := "interview"
	category := "user research"

	sql, args := query.
		NewBuilder(testProjection()).
		WhereContains("Name", &name).
		WhereEquals("Category", &category).
		Build()

	if !strings.Contains(sql, "t.name ILIKE $1") {
		t.Errorf("expected $1 for first condition: %s", sql)
	}
	if !strings.Contains(sql, "t.category = $2") {
		t.Errorf("expected $2 for second condition: %s", sql)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
	if args[0] != "%interview%" {
		t.Errorf("unexpected first arg: %v", args[0])
	}
}

func TestWhereArrayHas(t *testing.T) {
	tag := "discovery"

	sql, args := query.
		NewBuilder(testProjection()).
		WhereArrayHas("Tags", &tag).
		Build()

	if !strings.Contains(sql, "$1 = ANY(t.tags)") {
		t.Errorf("expected array membership clause: %s", sql)
	}
	if len(args) != 1 || args[0] != "discovery" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestNilFiltersAreNoOps(t *testing.T) {
	sql, args := query.
		NewBuilder(testProjection()).
		WhereContains("Name", nil).
		WhereEquals("Category", (*string)(nil)).
		WhereArrayHas("Tags", nil).
		Build()

	if strings.Contains(sql, "WHERE") {
		t.Errorf("expected no WHERE clause: %s", sql)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %d", len(args))
	}
}

func TestWhereSearch(t *testing.T) {
	search := "persona"

	sql, args := query.
		NewBuilder(testProjection()).
		WhereSearch(&search, "Name", "Category").
		Build()

	if !strings.Contains(sql, "(t.name ILIKE $1 OR t.category ILIKE $2)") {
		t.Errorf("unexpected search clause: %s", sql)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
}

func TestBuildPage(t *testing.T) {
	sql, _ := query.
		NewBuilder(testProjection(), query.SortField{Field: "Name"}).
		BuildPage(3, 10)

	if !strings.Contains(sql, "ORDER BY t.name ASC") {
		t.Errorf("expected default sort: %s", sql)
	}
	if !strings.Contains(sql, "LIMIT 10 OFFSET 20") {
		t.Errorf("expected limit/offset: %s", sql)
	}
}

func TestOrderByFieldsOverridesDefault(t *testing.T) {
	sql, _ := query.
		NewBuilder(testProjection(), query.SortField{Field: "Name"}).
		OrderByFields([]query.SortField{{Field: "Category", Descending: true}}).
		Build()

	if !strings.Contains(sql, "ORDER BY t.category DESC") {
		t.Errorf("expected override sort: %s", sql)
	}
	if strings.Contains(sql, "t.name ASC") {
		t.Errorf("default sort should be overridden: %s", sql)
	}
}

func TestBuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).BuildSingle("ID", "abc")

	if !strings.Contains(sql, "WHERE t.id = $1") {
		t.Errorf("unexpected single query: %s", sql)
	}
	if len(args) != 1 || args[0] != "abc" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildCount(t *testing.T) {
	category := "testing"

	sql, args := query.
		NewBuilder(testProjection()).
		WhereEquals("Category", &category).
		BuildCount()

	want := "SELECT COUNT(*) FROM public.templates t WHERE t.category = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 {
		t.Errorf("expected 1 arg, got %d", len(args))
	}
}
