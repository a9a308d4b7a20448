package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/voice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withClassifier(fn func(ctx context.Context, transcript string) (voice.Command, error)) func(*Deps) {
	return func(d *Deps) {
		d.Classifier = classifierFunc(fn)
	}
}

func TestVoiceCommand_Unavailable(t *testing.T) {
	env := newTestServer(t)

	w := env.do(t, http.MethodPost, "/voice/command", types.TranscriptRequest{Transcript: "add skill Go"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestVoiceCommand_AddSkill(t *testing.T) {
	env := newTestServer(t,
		func(d *Deps) { d.Store = document.NewStore(types.Empty()) },
		withClassifier(func(_ context.Context, transcript string) (voice.Command, error) {
			assert.Equal(t, "add skill Python", transcript)
			return voice.AddSkill{Name: "Python"}, nil
		}),
	)

	w := env.do(t, http.MethodPost, "/voice/command", types.TranscriptRequest{Transcript: "add skill Python"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[VoiceResponse](t, w)
	assert.Equal(t, voice.IntentAddSkill, resp.Intent)
	assert.True(t, resp.Applied)

	skills := env.store.Current().Skills
	require.Len(t, skills, 1)
	assert.Equal(t, "Python", skills[0].Name)
	assert.Equal(t, types.LevelIntermediate, skills[0].Level)
}

func TestVoiceCommand_NotUnderstood(t *testing.T) {
	env := newTestServer(t, withClassifier(func(context.Context, string) (voice.Command, error) {
		return nil, &voice.ClassifyError{Message: "model call failed"}
	}))

	w := env.do(t, http.MethodPost, "/voice/command", types.TranscriptRequest{Transcript: "mumble"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[VoiceResponse](t, w)
	assert.Equal(t, voice.IntentUnknown, resp.Intent)
	assert.False(t, resp.Applied)
	assert.Equal(t, types.Demo(), env.store.Current())
}

func TestVoiceCommand_BlankTranscript(t *testing.T) {
	env := newTestServer(t, withClassifier(func(context.Context, string) (voice.Command, error) {
		t.Fatal("classifier must not be called")
		return nil, nil
	}))

	w := env.do(t, http.MethodPost, "/voice/command", types.TranscriptRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
