package generations_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/framepromptly/framepromptly/internal/generations"
	"github.com/framepromptly/framepromptly/internal/workflow"
	"github.com/framepromptly/framepromptly/pkg/pagination"
)

type mockSystem struct {
	generation *generations.Generation
	outcome    *generations.RespondOutcome
	err        error

	created  *generations.CreateCommand
	enhanced *uuid.UUID
}

func (m *mockSystem) Handler() *generations.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return generations.NewHandler(m, logger, pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
}

func (m *mockSystem) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters generations.Filters,
) (*pagination.PageResult[generations.Generation], error) {
	if m.err != nil {
		return nil, m.err
	}
	result := pagination.NewPageResult([]generations.Generation{*m.generation}, 1, page.Page, page.PageSize)
	return &result, nil
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*generations.Generation, error) {
	return m.generation, m.err
}

func (m *mockSystem) Create(ctx context.Context, cmd generations.CreateCommand) (*generations.Generation, error) {
	m.created = &cmd
	return m.generation, m.err
}

func (m *mockSystem) Delete(ctx context.Context, id uuid.UUID) error {
	return m.err
}

func (m *mockSystem) Enhance(ctx context.Context, id uuid.UUID, cmd generations.EnhanceCommand) (*generations.Generation, error) {
	m.enhanced = &id
	return m.generation, m.err
}

func (m *mockSystem) Respond(ctx context.Context, id uuid.UUID, cmd generations.RespondCommand) (*generations.RespondOutcome, error) {
	return m.outcome, m.err
}

func sample() *generations.Generation {
	return &generations.Generation{
		ID:             uuid.New(),
		ProjectID:      uuid.New(),
		Method:         "zero-shot",
		Framework:      "design-thinking",
		FrameworkStage: "empathize",
		Tool:           "user-interviews",
		Prompt:         "Conduct user interviews",
		Status:         generations.StatusDraft,
	}
}

func TestParseStatus(t *testing.T) {
	for _, status := range generations.Statuses {
		parsed, err := generations.ParseStatus(string(status))
		if err != nil {
			t.Errorf("%s: unexpected error: %v", status, err)
		}
		if parsed != status {
			t.Errorf("expected %s, got %s", status, parsed)
		}
	}

	if _, err := generations.ParseStatus("archived"); !errors.Is(err, generations.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestStatusUnmarshalRejectsUnknown(t *testing.T) {
	var s generations.Status
	if err := json.Unmarshal([]byte(`"pending"`), &s); !errors.Is(err, generations.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{generations.ErrNotFound, http.StatusNotFound},
		{generations.ErrDuplicate, http.StatusConflict},
		{generations.ErrInvalidStatus, http.StatusBadRequest},
		{fmt.Errorf("enhance: %w", workflow.ErrEnhanceFailed), http.StatusBadGateway},
		{fmt.Errorf("respond: %w", workflow.ErrRespondFailed), http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		if got := generations.MapHTTPStatus(tc.err); got != tc.want {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.want, got)
		}
	}
}

func TestHandlerCreate(t *testing.T) {
	sys := &mockSystem{generation: sample()}
	handler := sys.Handler()

	body, _ := json.Marshal(generations.CreateCommand{
		ProjectID: uuid.New(),
		Method:    "zero-shot",
		Framework: "design-thinking",
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/generations", bytes.NewReader(body))
	handler.Create(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if sys.created == nil {
		t.Fatal("expected Create to reach the system")
	}
	if sys.created.Framework != "design-thinking" {
		t.Errorf("unexpected framework: %s", sys.created.Framework)
	}
}

func TestHandlerEnhance(t *testing.T) {
	gen := sample()
	enhanced := "Refined prompt"
	gen.EnhancedPrompt = &enhanced
	gen.Status = generations.StatusEnhanced

	sys := &mockSystem{generation: gen}
	handler := sys.Handler()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/generations/"+gen.ID.String()+"/enhance", nil)
	r.SetPathValue("id", gen.ID.String())
	handler.Enhance(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if sys.enhanced == nil || *sys.enhanced != gen.ID {
		t.Error("expected Enhance to receive the path id")
	}

	var result generations.Generation
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Status != generations.StatusEnhanced {
		t.Errorf("expected enhanced status, got %s", result.Status)
	}
}

func TestHandlerEnhanceBadID(t *testing.T) {
	sys := &mockSystem{generation: sample()}
	handler := sys.Handler()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/generations/not-a-uuid/enhance", nil)
	r.SetPathValue("id", "not-a-uuid")
	handler.Enhance(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandlerRespondSurfacesProviderError(t *testing.T) {
	gen := sample()
	sys := &mockSystem{
		generation: gen,
		outcome:    &generations.RespondOutcome{Generation: gen, Error: "provider unavailable"},
	}
	handler := sys.Handler()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/generations/"+gen.ID.String()+"/respond", nil)
	r.SetPathValue("id", gen.ID.String())
	handler.Respond(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var outcome generations.RespondOutcome
	if err := json.NewDecoder(w.Body).Decode(&outcome); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if outcome.Error != "provider unavailable" {
		t.Errorf("expected provider error in outcome, got %q", outcome.Error)
	}
}

func TestHandlerRespondWorkflowFailure(t *testing.T) {
	sys := &mockSystem{err: fmt.Errorf("respond: %w", workflow.ErrRespondFailed)}
	sys.generation = sample()
	handler := sys.Handler()

	id := uuid.New()
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/generations/"+id.String()+"/respond", nil)
	r.SetPathValue("id", id.String())
	handler.Respond(w, r)

	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", w.Code)
	}
}
