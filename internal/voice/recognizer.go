package voice

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

// Result is one recognized speech segment. Segments with the same Index
// replace each other as recognition refines them.
type Result struct {
	Index int
	Text  string
}

// Recognizer captures speech. Start returns a channel of results that is
// closed when capture ends, whether by silence, Stop, Abort or ctx.
type Recognizer interface {
	Available() bool
	Start(ctx context.Context) (<-chan Result, error)
	Stop()
	Abort()
}

// LineRecognizer treats each line of an io.Reader as one spoken segment. A
// blank line ends the utterance; end of input makes the recognizer
// unavailable.
type LineRecognizer struct {
	lines chan string
	once  sync.Once
	r     io.Reader

	mu   sync.Mutex
	eof  bool
	stop chan struct{}
}

// NewLineRecognizer creates a recognizer reading from r.
func NewLineRecognizer(r io.Reader) *LineRecognizer {
	return &LineRecognizer{r: r, lines: make(chan string)}
}

// Available implements Recognizer.
func (l *LineRecognizer) Available() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return !l.eof
}

func (l *LineRecognizer) scan() {
	scanner := bufio.NewScanner(l.r)
	for scanner.Scan() {
		l.lines <- scanner.Text()
	}
	l.mu.Lock()
	l.eof = true
	l.mu.Unlock()
	close(l.lines)
}

// Start implements Recognizer.
func (l *LineRecognizer) Start(ctx context.Context) (<-chan Result, error) {
	l.once.Do(func() { go l.scan() })

	stop := make(chan struct{})
	l.mu.Lock()
	if l.eof {
		l.mu.Unlock()
		return nil, &RecognizerError{Message: "input closed"}
	}
	l.stop = stop
	l.mu.Unlock()

	out := make(chan Result)
	go func() {
		defer close(out)
		index := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-stop:
				return
			case line, ok := <-l.lines:
				if !ok {
					return
				}
				line = strings.TrimSpace(line)
				if line == "" {
					return
				}
				select {
				case out <- Result{Index: index, Text: line}:
					index++
				case <-ctx.Done():
					return
				case <-stop:
					return
				}
			}
		}
	}()
	return out, nil
}

// Stop implements Recognizer.
func (l *LineRecognizer) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stop != nil {
		close(l.stop)
		l.stop = nil
	}
}

// Abort implements Recognizer. Lines have no partial state to discard, so it
// is the same as Stop.
func (l *LineRecognizer) Abort() {
	l.Stop()
}
