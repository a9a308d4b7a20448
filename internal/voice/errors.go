// Package voice turns spoken commands into document edits. A Session drives a
// speech Recognizer, a Classifier maps the final transcript to a Command and
// the command is applied through the document store.
package voice

import "fmt"

// ClassifyError represents a failed or unusable classification call
type ClassifyError struct {
	Message string
	Cause   error
}

func (e *ClassifyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("classify error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("classify error: %s", e.Message)
}

func (e *ClassifyError) Unwrap() error {
	return e.Cause
}

// RecognizerError represents a failure to start speech capture
type RecognizerError struct {
	Message string
	Cause   error
}

func (e *RecognizerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("recognizer error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("recognizer error: %s", e.Message)
}

func (e *RecognizerError) Unwrap() error {
	return e.Cause
}
