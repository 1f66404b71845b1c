package plans

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is the kind shared by every "does not resolve" error,
	// templates.ErrTemplateNotFound included.
	ErrNotFound = errors.New("not found")

	ErrExerciseNotFound     = fmt.Errorf("exercise %w", ErrNotFound)
	ErrExerciseSetNotFound  = fmt.Errorf("exercise set %w", ErrNotFound)
	ErrSetDetailNotFound    = fmt.Errorf("set detail %w", ErrNotFound)
	ErrExerciseTypeNotFound = fmt.Errorf("exercise type %w", ErrNotFound)

	ErrValidation          = errors.New("validation error")
	ErrExerciseTypeExists  = errors.New("exercise type already exists")
	ErrMissingUserIdentity = errors.New("missing user identity")
)

// ValidationError reports an out-of-range or missing field.
// errors.Is(err, ErrValidation) holds for every ValidationError.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// prefixed returns a copy of err with field nested under prefix,
// e.g. "reps" -> "sets[1].details[0].reps".
func prefixed(prefix string, err error) error {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return &ValidationError{Field: prefix + "." + vErr.Field, Reason: vErr.Reason}
	}
	return err
}

// HTTPStatus maps the package error kinds to response codes.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrExerciseTypeExists):
		return http.StatusConflict
	case errors.Is(err, ErrMissingUserIdentity):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
