package voice

import (
	"context"
	"strings"

	"github.com/jonathan/resume-builder/internal/document"
)

// Interpret classifies transcript and applies the resulting command through
// store. A blank transcript, a classification failure or an Unknown intent
// leave the document unchanged.
func Interpret(ctx context.Context, classifier Classifier, store *document.Store, transcript string) (Command, error) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return Unknown{}, nil
	}
	if classifier == nil {
		return Unknown{Transcript: transcript}, &ClassifyError{Message: "no classifier configured"}
	}

	cmd, err := classifier.Classify(ctx, transcript)
	if err != nil {
		return Unknown{Transcript: transcript}, err
	}
	if cmd == nil || cmd.Intent() == IntentUnknown {
		return Unknown{Transcript: transcript}, nil
	}

	if _, err := store.Update(Edit(cmd)); err != nil {
		return cmd, err
	}
	return cmd, nil
}
