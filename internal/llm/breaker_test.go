package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	calls int
	err   error
	out   string
}

func (s *stubClient) GenerateContent(_ context.Context, _ string, _ ModelTier) (string, error) {
	s.calls++
	return s.out, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, _ string, _ ModelTier) (string, error) {
	s.calls++
	return s.out, s.err
}

func (s *stubClient) GetModel(_ ModelTier) string { return "stub-model" }

func (s *stubClient) Close() error { return nil }

func testBreakerConfig() BreakerConfig {
	cfg := DefaultBreakerConfig("test")
	cfg.Timeout = time.Hour
	return cfg
}

func TestBreakerClient_PassesThrough(t *testing.T) {
	stub := &stubClient{out: `{"summary": "ok"}`}
	client := NewBreakerClient(stub, testBreakerConfig(), nil)

	out, err := client.GenerateJSON(context.Background(), "p", TierStandard)
	require.NoError(t, err)
	assert.Equal(t, `{"summary": "ok"}`, out)
	assert.Equal(t, "stub-model", client.GetModel(TierStandard))
	assert.Equal(t, gobreaker.StateClosed, client.State())
}

func TestBreakerClient_OpensAfterFailures(t *testing.T) {
	stub := &stubClient{err: errors.New("quota exceeded")}
	client := NewBreakerClient(stub, testBreakerConfig(), nil)

	for i := 0; i < 3; i++ {
		_, err := client.GenerateContent(context.Background(), "p", TierStandard)
		require.Error(t, err)
		assert.False(t, IsBreakerOpen(err))
	}
	assert.Equal(t, gobreaker.StateOpen, client.State())

	_, err := client.GenerateContent(context.Background(), "p", TierStandard)
	assert.True(t, IsBreakerOpen(err))
	assert.Equal(t, 3, stub.calls, "open breaker must not reach the provider")
}

func TestBreakerClient_CancellationIsNotAFailure(t *testing.T) {
	stub := &stubClient{err: context.Canceled}
	client := NewBreakerClient(stub, testBreakerConfig(), nil)

	for i := 0; i < 5; i++ {
		_, err := client.GenerateJSON(context.Background(), "p", TierStandard)
		assert.ErrorIs(t, err, context.Canceled)
	}
	assert.Equal(t, gobreaker.StateClosed, client.State())
}
