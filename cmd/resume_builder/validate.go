package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <snapshot.json>",
	Short: "Validate a resume snapshot file",
	Long: `Checks a snapshot file against the document schema and the document invariants (skill levels, density, theme color, unique ids).

With --schema, the file is checked against that JSON Schema file instead.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var validateSchemaPath string

func init() {
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "Validate against this JSON Schema file instead of the document schema")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if validateSchemaPath != "" {
		if err := schemas.ValidateJSON(validateSchemaPath, args[0]); err != nil {
			printValidationFailure(out, err)
			return fmt.Errorf("file does not match %s", validateSchemaPath)
		}
		_, _ = fmt.Fprintf(out, "Validation passed against %s\n", validateSchemaPath)
		return nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read snapshot file: %w", err)
	}

	doc, err := storage.Decode(data)
	if err != nil {
		printValidationFailure(out, err)
		return fmt.Errorf("snapshot is invalid")
	}

	_, _ = fmt.Fprintf(out, "Validation passed: %d experience, %d education, %d skills\n",
		len(doc.Experience), len(doc.Education), len(doc.Skills))
	return nil
}

func printValidationFailure(out io.Writer, err error) {
	_, _ = fmt.Fprintln(out, "Validation failed:")
	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		for _, e := range validationErr.Errors {
			_, _ = fmt.Fprintf(out, "  - %s: %s\n", e.Field, e.Message)
		}
		return
	}
	_, _ = fmt.Fprintf(out, "  - %v\n", err)
}
