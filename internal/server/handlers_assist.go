package server

import (
	"net/http"

	"github.com/jonathan/resume-builder/internal/document"
)

// AssistResponse reports the outcome of an assist action.
type AssistResponse struct {
	Applied  bool              `json:"applied"`
	Text     string            `json:"text,omitempty"`
	Added    []string          `json:"added,omitempty"`
	Document *DocumentResponse `json:"document,omitempty"`
}

func (s *Server) assistResponse(applied bool) AssistResponse {
	resp := AssistResponse{Applied: applied}
	if applied {
		resp.Document = &DocumentResponse{Version: s.store.Version(), Document: s.store.Current()}
	}
	return resp
}

// handleAssistSummary generates and applies a professional summary
func (s *Server) handleAssistSummary(w http.ResponseWriter, r *http.Request) {
	summary, applied, err := s.editor.GenerateSummaryInto(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := s.assistResponse(applied)
	resp.Text = summary
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAssistEnhance rewrites the description of the experience at an index
func (s *Server) handleAssistEnhance(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	id, err := document.EntryIDAt(s.store.Current(), document.ListExperience, index)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	text, applied, err := s.editor.EnhanceExperience(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := s.assistResponse(applied)
	resp.Text = text
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAssistSkills suggests skills for the job title and merges them
func (s *Server) handleAssistSkills(w http.ResponseWriter, r *http.Request) {
	added, err := s.editor.SuggestSkillsInto(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := s.assistResponse(len(added) > 0)
	resp.Added = added
	s.jsonResponse(w, http.StatusOK, resp)
}
