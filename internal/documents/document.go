// Package documents implements the knowledge-base document domain.
// It provides types, data access, text extraction, and blob storage
// integration for documents attached to projects.
package documents

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an uploaded knowledge-base document with its metadata
// and blob storage reference.
type Document struct {
	ID          uuid.UUID  `json:"id"`
	ProjectID   *uuid.UUID `json:"project_id,omitempty"`
	Filename    string     `json:"filename"`
	ContentType string     `json:"content_type"`
	SizeBytes   int64      `json:"size_bytes"`
	PageCount   *int       `json:"page_count,omitempty"`
	StorageKey  string     `json:"storage_key"`
	UploadedAt  time.Time  `json:"uploaded_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateCommand carries the data needed to upload and register a new document.
// Data holds the raw file bytes. PageCount is optional and may be extracted
// by the caller via pdfcpu; nil values are stored as NULL.
type CreateCommand struct {
	Data        []byte
	Filename    string
	ContentType string
	ProjectID   *uuid.UUID
	PageCount   *int
}

// BatchResult reports the outcome of a single file within a batch upload.
// On success, Document is populated and Error is empty.
// On failure, Error describes the problem and Document is nil.
type BatchResult struct {
	Document *Document `json:"document,omitempty"`
	Filename string    `json:"filename"`
	Error    string    `json:"error,omitempty"`
}

// Content is the extracted text of a document, returned by the process
// endpoints without being persisted.
type Content struct {
	DocumentContent string `json:"document_content"`
}
