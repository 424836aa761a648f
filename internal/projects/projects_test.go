package projects_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/uuid"

	"github.com/framepromptly/framepromptly/internal/projects"
	"github.com/framepromptly/framepromptly/pkg/pagination"
)

type mockSystem struct {
	project *projects.Project
	err     error

	updated *projects.UpdateCommand
	deleted *uuid.UUID
}

func (m *mockSystem) Handler() *projects.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return projects.NewHandler(m, logger, pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
}

func (m *mockSystem) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters projects.Filters,
) (*pagination.PageResult[projects.Project], error) {
	if m.err != nil {
		return nil, m.err
	}
	result := pagination.NewPageResult([]projects.Project{*m.project}, 1, page.Page, page.PageSize)
	return &result, nil
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*projects.Project, error) {
	return m.project, m.err
}

func (m *mockSystem) Create(ctx context.Context, cmd projects.CreateCommand) (*projects.Project, error) {
	return m.project, m.err
}

func (m *mockSystem) Update(ctx context.Context, id uuid.UUID, cmd projects.UpdateCommand) (*projects.Project, error) {
	m.updated = &cmd
	return m.project, m.err
}

func (m *mockSystem) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleted = &id
	return m.err
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{projects.ErrNotFound, http.StatusNotFound},
		{projects.ErrDuplicate, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		if got := projects.MapHTTPStatus(tc.err); got != tc.want {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.want, got)
		}
	}
}

func TestFiltersFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("framework", "design-thinking")
	values.Set("framework_stage", "empathize")
	values.Set("name", "banking")

	f := projects.FiltersFromQuery(values)

	if f.Framework == nil || *f.Framework != "design-thinking" {
		t.Error("expected framework filter")
	}
	if f.FrameworkStage == nil || *f.FrameworkStage != "empathize" {
		t.Error("expected framework_stage filter")
	}
	if f.Name == nil || *f.Name != "banking" {
		t.Error("expected name filter")
	}
	if f.Tool != nil || f.OwnerID != nil {
		t.Error("unset parameters should stay nil")
	}
}

func TestHandlerFindNotFound(t *testing.T) {
	sys := &mockSystem{err: projects.ErrNotFound}
	handler := sys.Handler()

	id := uuid.New()
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/projects/"+id.String(), nil)
	r.SetPathValue("id", id.String())
	handler.Find(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestHandlerUpdate(t *testing.T) {
	project := &projects.Project{
		ID:        uuid.New(),
		Name:      "Teen banking app",
		Framework: "design-thinking",
	}
	sys := &mockSystem{project: project}
	handler := sys.Handler()

	body, _ := json.Marshal(projects.UpdateCommand{
		Name:           "Teen banking app",
		Framework:      "design-thinking",
		FrameworkStage: "define",
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest("PUT", "/projects/"+project.ID.String(), bytes.NewReader(body))
	r.SetPathValue("id", project.ID.String())
	handler.Update(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if sys.updated == nil || sys.updated.FrameworkStage != "define" {
		t.Error("expected update command to reach the system")
	}
}

func TestHandlerDelete(t *testing.T) {
	sys := &mockSystem{}
	handler := sys.Handler()

	id := uuid.New()
	w := httptest.NewRecorder()
	r := httptest.NewRequest("DELETE", "/projects/"+id.String(), nil)
	r.SetPathValue("id", id.String())
	handler.Delete(w, r)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
	if sys.deleted == nil || *sys.deleted != id {
		t.Error("expected delete to receive the path id")
	}
}
