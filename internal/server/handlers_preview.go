package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-builder/internal/rendering"
)

// handlePreview renders the interactive preview at the requested zoom
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	zoom := 1.0
	if raw := r.URL.Query().Get("zoom"); raw != "" {
		z, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			s.writeError(w, r, &ErrValidation{Field: "zoom", Message: "must be a number"})
			return
		}
		zoom = z
	} else if raw := r.URL.Query().Get("width"); raw != "" {
		if width, err := strconv.Atoi(raw); err == nil {
			zoom = rendering.DefaultZoom(width)
		}
	}
	s.writePreview(w, r, rendering.Options{Zoom: rendering.ClampZoom(zoom)})
}

// handlePrintPreview renders the print target used for PDF export
func (s *Server) handlePrintPreview(w http.ResponseWriter, r *http.Request) {
	s.writePreview(w, r, rendering.Options{ForPrint: true})
}

func (s *Server) writePreview(w http.ResponseWriter, r *http.Request, opts rendering.Options) {
	page, err := rendering.HTML(s.store.Current(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}

// handleExport prints the document to PDF and sends it as a download
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if s.exporter == nil || !s.exporter.Available() {
		s.writeError(w, r, &ErrUnavailable{Feature: "PDF export"})
		return
	}

	name, pdf, err := s.exporter.Export(r.Context(), s.store.Current())
	if s.metrics != nil {
		s.metrics.ObserveExport(err)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
