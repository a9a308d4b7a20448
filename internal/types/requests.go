//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// FieldValueRequest carries the new value of a single field edit.
type FieldValueRequest struct {
	Value string `json:"value"`
}

// ConfirmRequest guards destructive actions such as reset and loading the demo.
type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}

// ThemeRequest selects a theme color from the palette.
type ThemeRequest struct {
	Color string `json:"color" validate:"required,hexcolor"`
}

// TranscriptRequest is a finished voice transcript submitted for interpretation.
type TranscriptRequest struct {
	Transcript string `json:"transcript" validate:"required"`
}

// Validate validates the ThemeRequest using the validator.
func (r *ThemeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the TranscriptRequest using the validator.
func (r *TranscriptRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
