package documents_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/framepromptly/framepromptly/internal/documents"
	"github.com/framepromptly/framepromptly/pkg/pagination"
)

type mockSystem struct {
	doc     *documents.Document
	content *documents.Content
	err     error

	created []documents.CreateCommand
}

func (m *mockSystem) Handler(maxUploadSize int64) *documents.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return documents.NewHandler(m, logger, pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}, maxUploadSize)
}

func (m *mockSystem) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters documents.Filters,
) (*pagination.PageResult[documents.Document], error) {
	if m.err != nil {
		return nil, m.err
	}
	result := pagination.NewPageResult([]documents.Document{*m.doc}, 1, page.Page, page.PageSize)
	return &result, nil
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*documents.Document, error) {
	return m.doc, m.err
}

func (m *mockSystem) Create(ctx context.Context, cmd documents.CreateCommand) (*documents.Document, error) {
	m.created = append(m.created, cmd)
	return m.doc, m.err
}

func (m *mockSystem) CreateBatch(ctx context.Context, cmds []documents.CreateCommand) []documents.BatchResult {
	results := make([]documents.BatchResult, len(cmds))
	for i, cmd := range cmds {
		m.created = append(m.created, cmd)
		results[i] = documents.BatchResult{Filename: cmd.Filename, Document: m.doc}
	}
	return results
}

func (m *mockSystem) Delete(ctx context.Context, id uuid.UUID) error {
	return m.err
}

func (m *mockSystem) Content(ctx context.Context, id uuid.UUID) (*documents.Content, error) {
	return m.content, m.err
}

func multipartBody(t *testing.T, field, filename, contentType, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="` + field + `"; filename="` + filename + `"`}
	header["Content-Type"] = []string{contentType}

	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	return &buf, writer.FormDataContentType()
}

func TestExtractTextPlain(t *testing.T) {
	text, err := documents.ExtractText([]byte("interview notes"), "text/plain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "interview notes" {
		t.Errorf("expected passthrough, got %q", text)
	}
}

func TestExtractTextMarkdown(t *testing.T) {
	text, err := documents.ExtractText([]byte("# Findings"), "text/markdown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "# Findings" {
		t.Errorf("expected passthrough, got %q", text)
	}
}

func TestExtractTextUnsupported(t *testing.T) {
	_, err := documents.ExtractText([]byte{0x00}, "image/png")
	if !errors.Is(err, documents.ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{documents.ErrNotFound, http.StatusNotFound},
		{documents.ErrDuplicate, http.StatusConflict},
		{documents.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{documents.ErrInvalidFile, http.StatusBadRequest},
		{documents.ErrUnsupported, http.StatusBadRequest},
		{documents.ErrExtractFailed, http.StatusUnprocessableEntity},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		if got := documents.MapHTTPStatus(tc.err); got != tc.want {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.want, got)
		}
	}
}

func TestProcessReturnsContentWithoutPersisting(t *testing.T) {
	sys := &mockSystem{}
	handler := sys.Handler(1 << 20)

	body, contentType := multipartBody(t, "file", "notes.txt", "text/plain", "user feedback summary")

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/documents/process", body)
	r.Header.Set("Content-Type", contentType)
	handler.Process(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var content documents.Content
	if err := json.NewDecoder(w.Body).Decode(&content); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if content.DocumentContent != "user feedback summary" {
		t.Errorf("unexpected content: %q", content.DocumentContent)
	}
	if len(sys.created) != 0 {
		t.Error("process must not persist documents")
	}
}

func TestUploadCreatesDocument(t *testing.T) {
	doc := &documents.Document{
		ID:          uuid.New(),
		Filename:    "notes.txt",
		ContentType: "text/plain",
	}
	sys := &mockSystem{doc: doc}
	handler := sys.Handler(1 << 20)

	body, contentType := multipartBody(t, "file", "notes.txt", "text/plain", "user feedback summary")

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/documents", body)
	r.Header.Set("Content-Type", contentType)
	handler.Upload(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(sys.created) != 1 {
		t.Fatalf("expected 1 create, got %d", len(sys.created))
	}
	if sys.created[0].ContentType != "text/plain" {
		t.Errorf("unexpected content type: %s", sys.created[0].ContentType)
	}
	if sys.created[0].PageCount != nil {
		t.Error("expected no page count for text upload")
	}
}

func TestUploadRejectsBadProjectID(t *testing.T) {
	sys := &mockSystem{}
	handler := sys.Handler(1 << 20)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("project_id", "not-a-uuid")
	writer.Close()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/documents", &buf)
	r.Header.Set("Content-Type", writer.FormDataContentType())
	handler.Upload(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestContent(t *testing.T) {
	sys := &mockSystem{content: &documents.Content{DocumentContent: "extracted text"}}
	handler := sys.Handler(1 << 20)

	id := uuid.New()
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/documents/"+id.String()+"/content", nil)
	r.SetPathValue("id", id.String())
	handler.Content(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var content documents.Content
	if err := json.NewDecoder(w.Body).Decode(&content); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if content.DocumentContent != "extracted text" {
		t.Errorf("unexpected content: %q", content.DocumentContent)
	}
}
