package voice

import (
	"context"
	"sync"

	"github.com/jonathan/resume-builder/internal/llm"
)

// fakeRecognizer hands out a channel the test feeds directly.
type fakeRecognizer struct {
	mu        sync.Mutex
	available bool
	results   chan Result
	stops     int
	aborts    int
	starts    int
	startErr  error
}

func newFakeRecognizer() *fakeRecognizer {
	return &fakeRecognizer{available: true}
}

func (f *fakeRecognizer) Available() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.available
}

func (f *fakeRecognizer) Start(_ context.Context) (<-chan Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		return nil, f.startErr
	}
	f.starts++
	f.results = make(chan Result, 16)
	return f.results, nil
}

func (f *fakeRecognizer) Say(index int, text string) {
	f.mu.Lock()
	ch := f.results
	f.mu.Unlock()
	ch <- Result{Index: index, Text: text}
}

func (f *fakeRecognizer) end() {
	if f.results != nil {
		close(f.results)
		f.results = nil
	}
}

func (f *fakeRecognizer) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
	f.end()
}

func (f *fakeRecognizer) Abort() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.aborts++
	f.end()
}

func (f *fakeRecognizer) Stops() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stops
}

// stubClassifier returns a fixed command and records transcripts.
type stubClassifier struct {
	mu          sync.Mutex
	cmd         Command
	err         error
	transcripts []string
}

func (s *stubClassifier) Classify(_ context.Context, transcript string) (Command, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcripts = append(s.transcripts, transcript)
	return s.cmd, s.err
}

func (s *stubClassifier) Transcripts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.transcripts...)
}

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
	return `{"intent": "UNKNOWN"}`, nil
}

func (m *MockLLMClient) GetModel(_ llm.ModelTier) string { return "mock-model" }

func (m *MockLLMClient) Close() error { return nil }
