package engine

import (
	"errors"
	"net/http"
)

// Domain errors for prompt construction.
var (
	// ErrUnknownMethod indicates a method id outside the six recognized
	// prompting methods.
	ErrUnknownMethod = errors.New("method must be zero-shot, few-shot, chain-of-thought, instruction-tuning, role-playing, or step-by-step")
	// ErrInvalidVariableType indicates a variable type outside the recognized set.
	ErrInvalidVariableType = errors.New("variable type must be text, textarea, number, select, or multiselect")
)

// MapHTTPStatus maps engine errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnknownMethod) || errors.Is(err, ErrInvalidVariableType) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
