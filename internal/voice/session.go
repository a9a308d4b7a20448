package voice

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jonathan/resume-builder/internal/document"
	"go.uber.org/zap"
)

// DefaultSilenceTimeout ends capture after this long without a new result.
const DefaultSilenceTimeout = 2 * time.Second

// State is the lifecycle state of a voice session.
type State int

// Session states.
const (
	StateUnavailable State = iota
	StateIdle
	StateListening
	StateProcessing
)

func (s State) String() string {
	switch s {
	case StateUnavailable:
		return "unavailable"
	case StateIdle:
		return "idle"
	case StateListening:
		return "listening"
	case StateProcessing:
		return "processing"
	default:
		return "unknown"
	}
}

// Observer receives one event per interpreted command.
type Observer interface {
	ObserveVoiceCommand(intent string)
}

// Session runs one voice capture at a time: Idle -> Listening -> Processing
// -> Idle. A session whose recognizer is missing or unavailable stays
// Unavailable and ignores Start.
type Session struct {
	recognizer Recognizer
	classifier Classifier
	store      *document.Store
	logger     *zap.Logger
	observer   Observer
	silence    time.Duration

	mu         sync.Mutex
	state      State
	segments   map[int]string
	timer      *time.Timer
	cancel     context.CancelFunc
	closed     bool
	listeners  []func(State, string)
	wg         sync.WaitGroup
	notifyMu   sync.Mutex
	lastResult Command
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSilenceTimeout overrides DefaultSilenceTimeout.
func WithSilenceTimeout(d time.Duration) SessionOption {
	return func(s *Session) { s.silence = d }
}

// WithLogger sets the session logger.
func WithLogger(l *zap.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithObserver records interpreted commands.
func WithObserver(o Observer) SessionOption {
	return func(s *Session) { s.observer = o }
}

// NewSession creates a session applying commands to store.
func NewSession(recognizer Recognizer, classifier Classifier, store *document.Store, opts ...SessionOption) *Session {
	s := &Session{
		recognizer: recognizer,
		classifier: classifier,
		store:      store,
		logger:     zap.NewNop(),
		silence:    DefaultSilenceTimeout,
		state:      StateUnavailable,
	}
	for _, opt := range opts {
		opt(s)
	}
	if recognizer != nil && recognizer.Available() {
		s.state = StateIdle
	}
	return s
}

// OnChange registers fn to be called on every state or transcript change.
// fn must not call Close.
func (s *Session) OnChange(fn func(state State, transcript string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Transcript returns the text heard so far in the current capture.
func (s *Session) Transcript() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcriptLocked()
}

// LastCommand returns the most recently interpreted command, or nil.
func (s *Session) LastCommand() Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastResult
}

// Start begins a capture. It is a no-op unless the session is Idle.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.closed || s.state != StateIdle {
		s.mu.Unlock()
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	results, err := s.recognizer.Start(ctx)
	if err != nil {
		s.mu.Unlock()
		cancel()
		return &RecognizerError{Message: "failed to start capture", Cause: err}
	}

	s.cancel = cancel
	s.segments = make(map[int]string)
	s.state = StateListening
	s.wg.Add(1)
	s.mu.Unlock()

	s.notify(StateListening, "")
	go s.listen(ctx, results)
	return nil
}

// Stop ends the current capture as an explicit user action. The transcript
// heard so far is still processed.
func (s *Session) Stop() {
	s.mu.Lock()
	listening := s.state == StateListening
	s.mu.Unlock()
	if listening {
		s.recognizer.Stop()
	}
}

// Wait blocks until the current capture, including processing, has finished.
func (s *Session) Wait() {
	s.wg.Wait()
}

// Close aborts any capture and stops the silence timer. No listener is called
// after Close returns.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.stopTimerLocked()
	cancel := s.cancel
	listening := s.state == StateListening
	s.mu.Unlock()

	if listening && s.recognizer != nil {
		s.recognizer.Abort()
	}
	if cancel != nil {
		cancel()
	}
	// Wait for a notification in progress.
	s.notifyMu.Lock()
	s.notifyMu.Unlock() //nolint:staticcheck // empty critical section is a barrier
}

func (s *Session) listen(ctx context.Context, results <-chan Result) {
	defer s.wg.Done()

	for r := range results {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			continue
		}
		s.segments[r.Index] = strings.TrimSpace(r.Text)
		transcript := s.transcriptLocked()
		s.resetTimerLocked()
		s.mu.Unlock()
		s.notify(StateListening, transcript)
	}

	s.mu.Lock()
	s.stopTimerLocked()
	transcript := s.transcriptLocked()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if transcript == "" {
		s.finishLocked()
		s.mu.Unlock()
		s.notify(StateIdle, "")
		return
	}
	s.state = StateProcessing
	s.mu.Unlock()
	s.notify(StateProcessing, transcript)

	cmd, err := Interpret(ctx, s.classifier, s.store, transcript)
	if err != nil {
		s.logger.Warn("voice command not applied", zap.String("transcript", transcript), zap.Error(err))
	} else {
		s.logger.Info("voice command applied", zap.String("intent", string(cmd.Intent())))
	}
	if s.observer != nil && cmd != nil {
		s.observer.ObserveVoiceCommand(string(cmd.Intent()))
	}

	s.mu.Lock()
	s.lastResult = cmd
	s.finishLocked()
	s.mu.Unlock()
	s.notify(StateIdle, "")
}

func (s *Session) finishLocked() {
	s.segments = nil
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.closed {
		return
	}
	if s.recognizer.Available() {
		s.state = StateIdle
	} else {
		s.state = StateUnavailable
	}
}

func (s *Session) transcriptLocked() string {
	if len(s.segments) == 0 {
		return ""
	}
	indexes := make([]int, 0, len(s.segments))
	for i := range s.segments {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)
	parts := make([]string, 0, len(indexes))
	for _, i := range indexes {
		if text := s.segments[i]; text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

func (s *Session) resetTimerLocked() {
	s.stopTimerLocked()
	if s.silence <= 0 {
		return
	}
	recognizer := s.recognizer
	s.timer = time.AfterFunc(s.silence, recognizer.Stop)
}

func (s *Session) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) notify(state State, transcript string) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	listeners := append([]func(State, string){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(state, transcript)
	}
}
