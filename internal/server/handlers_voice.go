package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/voice"
	"go.uber.org/zap"
)

// VoiceResponse reports how a transcript was interpreted.
type VoiceResponse struct {
	Intent   voice.Intent      `json:"intent"`
	Applied  bool              `json:"applied"`
	Document *DocumentResponse `json:"document,omitempty"`
}

// handleVoiceCommand classifies a finished transcript and applies it.
// Classification failures leave the document unchanged and are not errors
// for the client.
func (s *Server) handleVoiceCommand(w http.ResponseWriter, r *http.Request) {
	if s.classifier == nil {
		s.writeError(w, r, &ErrUnavailable{Feature: "voice commands"})
		return
	}

	var req types.TranscriptRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, &ErrValidation{Field: "transcript", Message: "is required"})
		return
	}

	cmd, err := voice.Interpret(r.Context(), s.classifier, s.store, req.Transcript)
	var classifyErr *voice.ClassifyError
	switch {
	case errors.As(err, &classifyErr):
		s.logger.Warn("voice command not understood", zap.Error(err))
		cmd = voice.Unknown{Transcript: req.Transcript}
	case err != nil:
		s.writeError(w, r, err)
		return
	}

	if s.metrics != nil {
		s.metrics.ObserveVoiceCommand(string(cmd.Intent()))
	}

	resp := VoiceResponse{Intent: cmd.Intent(), Applied: cmd.Intent() != voice.IntentUnknown}
	if resp.Applied {
		resp.Document = &DocumentResponse{Version: s.store.Version(), Document: s.store.Current()}
	}
	s.jsonResponse(w, http.StatusOK, resp)
}
