package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/assist"
	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/voice"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates an unknown resource in the request path
type ErrNotFound struct {
	Resource string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("not found: %s", e.Resource)
}

// ErrUnavailable indicates an optional feature that is not configured
type ErrUnavailable struct {
	Feature string
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("%s is not available", e.Feature)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		indexErr    *document.IndexError
		notFoundErr *document.NotFoundError
		docValErr   *document.ValidationError
		fieldErr    *types.FieldError
		reqErr      *ErrValidation
		routeErr    *ErrNotFound
		unavailErr  *ErrUnavailable
		exportErr   *export.ExportError
		classifyErr *voice.ClassifyError
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, assist.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, assist.ErrUnavailable), errors.As(err, &unavailErr):
		return http.StatusServiceUnavailable
	case errors.As(err, &indexErr), errors.As(err, &notFoundErr), errors.As(err, &routeErr):
		return http.StatusNotFound
	case errors.As(err, &docValErr), errors.As(err, &fieldErr), errors.As(err, &reqErr):
		return http.StatusBadRequest
	case errors.As(err, &exportErr), errors.As(err, &classifyErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage returns the client-facing message for err.
func errorMessage(err error) string {
	if errors.Is(err, assist.ErrBusy) {
		return "busy"
	}
	return err.Error()
}
