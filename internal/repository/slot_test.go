package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"
	"github.com/wesamghrayeb/crm-app/internal/domain"
)

func testSlotRepo() *SlotRepository {
	return &SlotRepository{
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    time.Millisecond,
			Backoff:  2,
		},
	}
}

func serializationFailure() error {
	return fmt.Errorf("insert booking: %w", &pq.Error{Code: "40001"})
}

func TestIsContention(t *testing.T) {
	assert.True(t, isContention(&pq.Error{Code: "40001"}))
	assert.True(t, isContention(&pq.Error{Code: "40P01"}))
	assert.True(t, isContention(serializationFailure()), "wrapped errors must classify too")

	assert.False(t, isContention(&pq.Error{Code: "23505"}))
	assert.False(t, isContention(domain.ErrSlotFull))
	assert.False(t, isContention(assert.AnError))
	assert.False(t, isContention(nil))
}

func TestRetryContention_BudgetExhaustedIsTransient(t *testing.T) {
	r := testSlotRepo()

	calls := 0
	err := r.retryContention(context.Background(), func() error {
		calls++
		return serializationFailure()
	})

	assert.ErrorIs(t, err, domain.ErrTransient)
	assert.Equal(t, 3, calls)
}

func TestRetryContention_RecoversWithinBudget(t *testing.T) {
	r := testSlotRepo()

	calls := 0
	err := r.retryContention(context.Background(), func() error {
		calls++
		if calls == 1 {
			return serializationFailure()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

// Business outcomes from the locked transaction are never retried; the caller
// must see them on the first attempt.
func TestRetryContention_BusinessErrorsPassThrough(t *testing.T) {
	for _, want := range []error{domain.ErrSlotFull, domain.ErrAlreadyBooked, domain.ErrNotBooked} {
		r := testSlotRepo()

		calls := 0
		err := r.retryContention(context.Background(), func() error {
			calls++
			return want
		})

		assert.ErrorIs(t, err, want)
		assert.Equal(t, 1, calls)
	}
}

func TestRetryContention_ContextCancelStopsRetry(t *testing.T) {
	r := testSlotRepo()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.retryContention(ctx, func() error {
		return serializationFailure()
	})

	assert.ErrorIs(t, err, context.Canceled)
}
