package workflow

import (
	"errors"
	"net/http"
)

// Domain errors for workflow operations.
var (
	ErrInvalidStage  = errors.New("stage must be enhance or respond")
	ErrEnhanceFailed = errors.New("prompt enhancement failed")
	ErrRespondFailed = errors.New("response generation failed")
)

// MapHTTPStatus maps workflow errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidStage) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrEnhanceFailed) || errors.Is(err, ErrRespondFailed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
