package assist

import (
	"context"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
	"go.uber.org/zap"
)

// Editor runs assist operations against a document store. Model calls happen
// outside the store lock and their results are applied through Store.Update,
// so edits made while a call is in flight are kept.
type Editor struct {
	assistant *Assistant
	store     *document.Store
	busy      *Busy
	logger    *zap.Logger
}

// NewEditor creates an Editor. A nil assistant behaves like Disabled().
func NewEditor(assistant *Assistant, store *document.Store, busy *Busy, logger *zap.Logger) *Editor {
	if assistant == nil {
		assistant = Disabled()
	}
	if busy == nil {
		busy = NewBusy()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Editor{assistant: assistant, store: store, busy: busy, logger: logger}
}

// Available reports whether the underlying assistant has a model.
func (e *Editor) Available() bool {
	return e.assistant.Available()
}

// Busy returns the tracker used by the editor.
func (e *Editor) Busy() *Busy {
	return e.busy
}

// GenerateSummaryInto drafts a summary from the current document and stores
// it. An empty draft leaves the document unchanged and returns applied=false.
func (e *Editor) GenerateSummaryInto(ctx context.Context) (string, bool, error) {
	if !e.Available() {
		return "", false, ErrUnavailable
	}
	ctx, done, ok := e.busy.Begin(ctx, KeySummary)
	if !ok {
		return "", false, ErrBusy
	}
	defer done()

	summary := e.assistant.GenerateSummary(ctx, e.store.Current())
	if summary == "" || ctx.Err() != nil {
		return "", false, nil
	}
	if _, err := e.store.Update(document.ApplySummary(summary)); err != nil {
		return "", false, err
	}
	return summary, true, nil
}

// EnhanceExperience rewrites the description of the experience entry with the
// given id. If the entry was removed while the call was in flight the result
// is discarded.
func (e *Editor) EnhanceExperience(ctx context.Context, id string) (string, bool, error) {
	if !e.Available() {
		return "", false, ErrUnavailable
	}
	doc := e.store.Current()
	idx := document.IndexOf(doc.Experience, id)
	if idx < 0 {
		return "", false, &document.NotFoundError{List: string(document.ListExperience), ID: id}
	}
	original := doc.Experience[idx].Description

	ctx, done, ok := e.busy.Begin(ctx, ExperienceKey(id))
	if !ok {
		return "", false, ErrBusy
	}
	defer done()

	improved := e.assistant.EnhanceDescription(ctx, original)
	if improved == original || ctx.Err() != nil {
		return original, false, nil
	}

	next, err := e.store.Update(document.ApplyDescription(id, improved))
	if err != nil {
		return "", false, err
	}
	if document.IndexOf(next.Experience, id) < 0 {
		e.logger.Info("experience entry removed during enhance, result discarded", zap.String("id", id))
		return improved, false, nil
	}
	return improved, true, nil
}

// SuggestSkillsInto suggests skills for the personal job title and merges
// them into the skill list. It returns the names that were actually added.
func (e *Editor) SuggestSkillsInto(ctx context.Context) ([]string, error) {
	if !e.Available() {
		return nil, ErrUnavailable
	}
	ctx, done, ok := e.busy.Begin(ctx, KeySkills)
	if !ok {
		return nil, ErrBusy
	}
	defer done()

	suggested := e.assistant.SuggestSkills(ctx, e.store.Current().PersonalInfo.JobTitle)
	if len(suggested) == 0 || ctx.Err() != nil {
		return []string{}, nil
	}

	var added []string
	_, err := e.store.Update(func(doc types.Document) (types.Document, error) {
		next, err := document.MergeSkills(suggested)(doc)
		if err != nil {
			return doc, err
		}
		added = addedNames(doc.Skills, next.Skills)
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

func addedNames(before, after []types.Skill) []string {
	seen := make(map[string]bool, len(before))
	for _, s := range before {
		seen[s.ID] = true
	}
	added := []string{}
	for _, s := range after {
		if !seen[s.ID] {
			added = append(added, s.Name)
		}
	}
	return added
}
