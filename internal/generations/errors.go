package generations

import (
	"errors"
	"net/http"

	"github.com/framepromptly/framepromptly/internal/engine"
	"github.com/framepromptly/framepromptly/internal/workflow"
)

// Domain errors for generation operations.
var (
	ErrNotFound      = errors.New("generation not found")
	ErrDuplicate     = errors.New("generation already exists")
	ErrInvalidStatus = errors.New("status must be draft, enhanced, or responded")
	ErrTemplate      = errors.New("template lookup failed")
)

// MapHTTPStatus maps generation domain errors to appropriate HTTP status
// codes, including the workflow and engine errors that surface through
// generation operations.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidStatus) || errors.Is(err, ErrTemplate) {
		return http.StatusBadRequest
	}
	if errors.Is(err, engine.ErrUnknownMethod) {
		return http.StatusBadRequest
	}
	if errors.Is(err, workflow.ErrEnhanceFailed) || errors.Is(err, workflow.ErrRespondFailed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
