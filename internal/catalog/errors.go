package catalog

import (
	"errors"
	"net/http"
)

// Domain errors for catalog lookups.
var (
	ErrNotFound          = errors.New("framework not found")
	ErrStageNotFound     = errors.New("framework stage not found")
	ErrInvalidDifficulty = errors.New("difficulty must be beginner, intermediate, or advanced")
)

// MapHTTPStatus maps catalog errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrStageNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidDifficulty) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
