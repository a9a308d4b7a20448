package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the saved resume to HTML",
	Long:  "Renders the saved resume as a standalone HTML page, either the interactive preview at a zoom level or the print view used for PDF export.",
	RunE:  runRender,
}

var (
	renderOutput string
	renderPrint  bool
	renderZoom   float64
)

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Path to output HTML file (default: stdout)")
	renderCmd.Flags().BoolVar(&renderPrint, "print", false, "Render the print view instead of the preview")
	renderCmd.Flags().Float64Var(&renderZoom, "zoom", 1, "Preview zoom, clamped to 0.4-1.5")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	opts := rendering.Options{Zoom: rendering.ClampZoom(renderZoom), ForPrint: renderPrint}
	page, err := rendering.HTML(a.store.Current(), opts)
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	if renderOutput == "" {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), page)
		return nil
	}

	if err := writeOutput(renderOutput, []byte(page)); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", renderOutput)
	return nil
}

// writeOutput writes data to path, creating the parent directory.
func writeOutput(path string, data []byte) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
