package service

import (
	"errors"
	"fmt"
)

var ErrNotPending = errors.New("scheduled post is no longer pending")

// ValidationError rejects a request before anything is dispatched.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func notConfigured(platform fmt.Stringer) string {
	return fmt.Sprintf("Platform %s not configured", platform)
}
