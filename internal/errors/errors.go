package errors

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the engine. Callers test with errors.Is.
// Only ErrStoreUnavailable is worth retrying.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrAuthorization     = errors.New("not authorized")
	ErrStoreUnavailable  = errors.New("store unavailable")
)

func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFound(what, id string) error {
	return fmt.Errorf("%w: %s %q", ErrNotFound, what, id)
}

func InvalidTransition(from, to string) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

func Authorization(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrAuthorization, fmt.Sprintf(format, args...))
}

// StoreUnavailable keeps the cause reachable through errors.Is/As.
func StoreUnavailable(op string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, cause)
}

// Retryable reports whether the caller may retry the operation.
func Retryable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
