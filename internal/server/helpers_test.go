package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonathan/resume-builder/internal/assist"
	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/voice"
	"github.com/stretchr/testify/require"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateJSONFunc func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

func (m *MockLLMClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return "", nil
}

func (m *MockLLMClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, prompt, tier)
	}
	return `{}`, nil
}

func (m *MockLLMClient) GetModel(_ llm.ModelTier) string { return "mock-model" }

func (m *MockLLMClient) Close() error { return nil }

// classifierFunc adapts a function to voice.Classifier.
type classifierFunc func(ctx context.Context, transcript string) (voice.Command, error)

func (f classifierFunc) Classify(ctx context.Context, transcript string) (voice.Command, error) {
	return f(ctx, transcript)
}

type fakeExporter struct {
	available bool
	pdf       []byte
	err       error
}

func (f *fakeExporter) Available() bool { return f.available }

func (f *fakeExporter) Export(_ context.Context, doc types.Document) (string, []byte, error) {
	return "Pratima_Singh.pdf", f.pdf, f.err
}

type testEnv struct {
	server  *Server
	store   *document.Store
	handler http.Handler
}

// newTestServer builds a server around a demo document with rate limiting
// disabled. Options may replace any dependency.
func newTestServer(t *testing.T, opts ...func(*Deps)) *testEnv {
	t.Helper()
	deps := Deps{Store: document.NewStore(types.Demo())}
	for _, opt := range opts {
		opt(&deps)
	}

	s, err := New(Config{Port: 0, RateLimit: &ratelimit.Config{Enabled: false}}, deps)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })

	return &testEnv{server: s, store: deps.Store, handler: s.Handler()}
}

// withAssist wires an editor backed by client.
func withAssist(client llm.Client) func(*Deps) {
	return func(d *Deps) {
		d.Editor = assist.NewEditor(assist.New(client), d.Store, assist.NewBusy(), nil)
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
