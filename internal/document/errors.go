// Package document implements the single update point of the resume editor:
// id generation, copy-on-write list primitives, document edits and the Store.
package document

import "fmt"

// IndexError reports a list address that does not exist in the current document.
type IndexError struct {
	List  string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index error: %s[%d] out of range (len %d)", e.List, e.Index, e.Len)
}

// NotFoundError reports an id that is not present in a list.
type NotFoundError struct {
	List string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s entry %q", e.List, e.ID)
}

// ValidationError wraps a document that failed validation at Replace.
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
