package assist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusy_SecondTriggerIgnored(t *testing.T) {
	b := NewBusy()

	_, done, ok := b.Begin(context.Background(), KeySummary)
	require.True(t, ok)

	_, _, ok = b.Begin(context.Background(), KeySummary)
	assert.False(t, ok)

	// Other keys are independent
	_, doneSkills, ok := b.Begin(context.Background(), KeySkills)
	require.True(t, ok)
	assert.Equal(t, []string{KeySkills, KeySummary}, b.Active())

	done()
	doneSkills()
	assert.Empty(t, b.Active())

	_, done, ok = b.Begin(context.Background(), KeySummary)
	assert.True(t, ok)
	done()
}

func TestBusy_CancelKeepsKeyUntilDone(t *testing.T) {
	b := NewBusy()

	ctx, done, ok := b.Begin(context.Background(), ExperienceKey("42"))
	require.True(t, ok)

	b.Cancel(ExperienceKey("42"))
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.True(t, b.IsBusy("exp-42"))

	done()
	assert.False(t, b.IsBusy("exp-42"))
}

func TestBusy_CancelAll(t *testing.T) {
	b := NewBusy()

	ctx1, done1, _ := b.Begin(context.Background(), KeySummary)
	ctx2, done2, _ := b.Begin(context.Background(), KeySkills)
	defer done1()
	defer done2()

	b.CancelAll()
	assert.Error(t, ctx1.Err())
	assert.Error(t, ctx2.Err())
}

func TestBusy_DoneIsIdempotentForLaterFlight(t *testing.T) {
	b := NewBusy()

	_, done1, _ := b.Begin(context.Background(), KeySummary)
	done1()
	_, done2, ok := b.Begin(context.Background(), KeySummary)
	require.True(t, ok)

	// A stale done must not release the newer flight
	done1()
	assert.True(t, b.IsBusy(KeySummary))
	done2()
}
