// Package assist implements the AI text helpers of the editor: rewriting a job
// description, drafting a profile summary and suggesting skills. Every
// operation degrades to a fallback value instead of failing.
package assist

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when an operation is already running for the same key.
var ErrBusy = errors.New("assist operation already in progress")

// ErrUnavailable is returned by editor operations when no model is configured.
var ErrUnavailable = errors.New("AI assist is not configured")

// APICallError represents a failed or unusable model call
type APICallError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}
