package export

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindChrome_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	chrome := filepath.Join(dir, "chrome")
	require.NoError(t, os.WriteFile(chrome, []byte("#!/bin/sh\n"), 0o755))

	assert.Equal(t, chrome, FindChrome(chrome))
	assert.Equal(t, "", FindChrome(filepath.Join(dir, "missing")))
	assert.Equal(t, "", FindChrome(dir), "a directory is not an executable")
}

func TestExport_ChromeMissing(t *testing.T) {
	exporter := NewPDFExporter(Options{ChromePath: filepath.Join(t.TempDir(), "nope")})
	assert.False(t, exporter.Available())

	doc := types.Demo()
	name, pdf, err := exporter.Export(context.Background(), doc)

	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.ErrorIs(t, err, exec.ErrNotFound)
	assert.Equal(t, "Pratima_Singh.pdf", name)
	assert.Nil(t, pdf)
	assert.Equal(t, types.Demo(), doc)
}

func TestNewPDFExporter_Defaults(t *testing.T) {
	exporter := NewPDFExporter(Options{ChromePath: "/does/not/exist"})
	assert.Equal(t, DefaultTimeout, exporter.timeout)
	assert.NotNil(t, exporter.logger)
}

func TestExport_Chrome(t *testing.T) {
	if os.Getenv("RUN_CHROME_TESTS") == "" {
		t.Skip("RUN_CHROME_TESTS not set, skipping headless chrome test")
	}

	exporter := NewPDFExporter(Options{ChromePath: os.Getenv("CHROME_PATH")})
	require.True(t, exporter.Available(), "chrome must be installed when RUN_CHROME_TESTS is set")

	name, pdf, err := exporter.Export(context.Background(), types.Demo())
	require.NoError(t, err)
	assert.Equal(t, "Pratima_Singh.pdf", name)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}
