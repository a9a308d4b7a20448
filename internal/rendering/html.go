package rendering

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"sync"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed preview.html.tmpl
var templateFS embed.FS

const templateName = "preview.html.tmpl"

var (
	previewOnce sync.Once
	previewTmpl *template.Template
	previewErr  error
)

func previewTemplate() (*template.Template, error) {
	previewOnce.Do(func() {
		tmpl, err := template.New(templateName).ParseFS(templateFS, templateName)
		if err != nil {
			previewErr = &TemplateError{Message: "failed to parse preview template", Cause: err}
			return
		}
		previewTmpl = tmpl
	})
	return previewTmpl, previewErr
}

// WriteHTML writes tree as a standalone HTML page.
func WriteHTML(w io.Writer, tree *VisualTree) error {
	if tree == nil {
		return &RenderError{Message: "nil visual tree"}
	}
	tmpl, err := previewTemplate()
	if err != nil {
		return err
	}
	if err := tmpl.Execute(w, tree); err != nil {
		return &TemplateError{Message: "failed to execute preview template", Cause: err}
	}
	return nil
}

// HTML renders doc and returns the page as a string.
func HTML(doc types.Document, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, Render(doc, opts)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
