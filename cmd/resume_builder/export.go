package main

import (
	"fmt"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the saved resume to PDF",
	Long:  "Prints the resume with headless Chrome to a single A4 PDF named after the person on the resume.",
	RunE:  runExport,
}

var (
	exportOutDir string
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutDir, "out-dir", "o", ".", "Directory to write the PDF to")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	exporter := export.NewPDFExporter(export.Options{
		ChromePath: a.cfg.ChromePath,
		Logger:     a.logger,
	})
	if !exporter.Available() {
		return fmt.Errorf("PDF export requires Chrome (set CHROME_PATH or chrome_path in the config file)")
	}

	name, pdf, err := exporter.Export(cmd.Context(), a.store.Current())
	a.metrics.ObserveExport(err)
	if err != nil {
		return fmt.Errorf("failed to export resume: %w", err)
	}

	path := filepath.Join(exportOutDir, name)
	if err := writeOutput(path, pdf); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bytes\n", len(pdf))
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", path)
	return nil
}
