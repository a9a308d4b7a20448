package voice

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, ch <-chan Result) []Result {
	t.Helper()
	var out []Result
	timeout := time.After(time.Second)
	for {
		select {
		case r, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, r)
		case <-timeout:
			t.Fatal("recognizer did not close its channel")
		}
	}
}

func TestLineRecognizer_BlankLineEndsUtterance(t *testing.T) {
	rec := NewLineRecognizer(strings.NewReader("add skill\nPython\n\nadd education\n"))
	require.True(t, rec.Available())

	ch, err := rec.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Result{{Index: 0, Text: "add skill"}, {Index: 1, Text: "Python"}}, collect(t, ch))

	ch, err = rec.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Result{{Index: 0, Text: "add education"}}, collect(t, ch))

	assert.Eventually(t, func() bool { return !rec.Available() }, time.Second, 5*time.Millisecond)
	_, err = rec.Start(context.Background())
	assert.Error(t, err)
}

func TestLineRecognizer_StopClosesChannel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	rec := NewLineRecognizer(pr)

	ch, err := rec.Start(context.Background())
	require.NoError(t, err)
	rec.Stop()
	assert.Empty(t, collect(t, ch))
	rec.Stop()
}

func TestLineRecognizer_DrivesSession(t *testing.T) {
	store := document.NewStore(types.Empty())
	rec := NewLineRecognizer(strings.NewReader("add skill Python\n\n"))
	s := NewSession(rec, &stubClassifier{cmd: AddSkill{Name: "Python"}}, store, WithSilenceTimeout(time.Hour))

	require.NoError(t, s.Start(context.Background()))
	s.Wait()

	require.Len(t, store.Current().Skills, 1)
	assert.Equal(t, "Python", store.Current().Skills[0].Name)
}
