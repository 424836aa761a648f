package templates

import (
	"errors"
	"net/http"
)

// Domain errors for template operations.
var (
	ErrNotFound  = errors.New("template not found")
	ErrDuplicate = errors.New("template name already exists")
	ErrBuiltin   = errors.New("built-in templates cannot be modified")
)

// MapHTTPStatus maps template domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrBuiltin) {
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
