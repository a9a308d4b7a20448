package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
	"go.uber.org/zap"
)

// DocumentResponse is returned by every document edit.
type DocumentResponse struct {
	Version  uint64         `json:"version"`
	Document types.Document `json:"document"`
}

// decodeJSON decodes an optional request body into dst. An empty body leaves
// dst untouched.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
}

// pathIndex parses the {index} path value.
func pathIndex(r *http.Request) (int, error) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		return 0, &ErrValidation{Field: "index", Message: "must be an integer"}
	}
	return index, nil
}

// pathList parses the {list} path value.
func pathList(r *http.Request) (document.List, error) {
	list, err := document.ParseList(r.PathValue("list"))
	if err != nil {
		return "", &ErrNotFound{Resource: "list " + r.PathValue("list")}
	}
	return list, nil
}

// apply runs edit against the store and writes the resulting document
func (s *Server) apply(w http.ResponseWriter, r *http.Request, edit document.Edit) {
	if _, err := s.store.Update(edit); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeDocument(w, http.StatusOK)
}

func (s *Server) writeDocument(w http.ResponseWriter, status int) {
	s.jsonResponse(w, status, DocumentResponse{
		Version:  s.store.Version(),
		Document: s.store.Current(),
	})
}

// handleGetDocument returns the current document
func (s *Server) handleGetDocument(w http.ResponseWriter, _ *http.Request) {
	s.writeDocument(w, http.StatusOK)
}

// handleReplaceDocument replaces the whole document
func (s *Server) handleReplaceDocument(w http.ResponseWriter, r *http.Request) {
	var doc types.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s.apply(w, r, document.ReplaceWith(doc.Normalize()))
}

// handleSetPersonalField edits one personal info field
func (s *Server) handleSetPersonalField(w http.ResponseWriter, r *http.Request) {
	var req types.FieldValueRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.apply(w, r, document.SetPersonalField(r.PathValue("field"), req.Value))
}

// handleAddEntry appends an entry to a list. The body may carry initial field
// values; without a body a blank entry is added.
func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	list, err := pathList(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var edit document.Edit
	switch list {
	case document.ListExperience:
		var e types.Experience
		err = decodeJSON(r, &e)
		edit = document.AddExperience(e)
	case document.ListEducation:
		var e types.Education
		err = decodeJSON(r, &e)
		edit = document.AddEducation(e)
	case document.ListSkills:
		var sk types.Skill
		err = decodeJSON(r, &sk)
		if level, ok := types.ParseSkillLevel(string(sk.Level)); ok {
			sk.Level = level
		}
		edit = document.AddSkill(sk)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if _, err := s.store.Update(edit); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeDocument(w, http.StatusCreated)
}

// handleUpdateEntry edits one field of the entry at an index. The index is
// resolved to the entry id inside the same store update.
func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	list, err := pathList(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	index, err := pathIndex(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req types.FieldValueRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	field := r.PathValue("field")
	s.apply(w, r, func(doc types.Document) (types.Document, error) {
		id, err := document.EntryIDAt(doc, list, index)
		if err != nil {
			return doc, err
		}
		return document.UpdateEntry(list, id, field, req.Value)(doc)
	})
}

// handleRemoveEntry removes the entry at an index
func (s *Server) handleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	list, err := pathList(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	index, err := pathIndex(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.apply(w, r, func(doc types.Document) (types.Document, error) {
		id, err := document.EntryIDAt(doc, list, index)
		if err != nil {
			return doc, err
		}
		return document.RemoveEntry(list, id)(doc)
	})
}

// handleSetTheme changes the theme color
func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req types.ThemeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, &ErrValidation{Field: "color", Message: err.Error()})
		return
	}
	s.apply(w, r, document.SetThemeColor(req.Color))
}

// handleToggleDensity flips the layout density
func (s *Server) handleToggleDensity(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, document.ToggleDensity())
}

// handleLoadDemo replaces the document with the demo resume once confirmed
func (s *Server) handleLoadDemo(w http.ResponseWriter, r *http.Request) {
	var req types.ConfirmRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if !req.Confirm {
		s.jsonResponse(w, http.StatusOK, map[string]any{"applied": false, "version": s.store.Version()})
		return
	}
	s.apply(w, r, document.ReplaceWith(types.Demo()))
}

// handleReset empties the document and clears the snapshot once confirmed
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req types.ConfirmRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	reset, err := s.store.Reset(r.Context(), req.Confirm)
	if err != nil && !reset {
		s.writeError(w, r, err)
		return
	}
	if err != nil {
		// The document was reset; only the snapshot removal failed.
		s.logger.Warn("reset could not clear snapshot", zap.Error(err))
	}
	if !reset {
		s.jsonResponse(w, http.StatusOK, map[string]any{"applied": false, "version": s.store.Version()})
		return
	}
	s.writeDocument(w, http.StatusOK)
}
