package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithConflictRetry(t *testing.T) {
	t.Run("retries on conflict until success", func(t *testing.T) {
		var calls int
		err := withConflictRetry(t.Context(), func() error {
			calls++
			if calls < maxConflictAttempts {
				return domain.ErrConflict
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, maxConflictAttempts, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		var calls int
		err := withConflictRetry(t.Context(), func() error {
			calls++
			return domain.ErrConflict
		})
		require.ErrorIs(t, err, domain.ErrConflict)
		assert.Equal(t, maxConflictAttempts, calls)
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		boom := errors.New("boom")
		var calls int
		err := withConflictRetry(t.Context(), func() error {
			calls++
			return boom
		})
		require.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})

	t.Run("canceled context stops retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := withConflictRetry(ctx, func() error { return domain.ErrConflict })
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestPointsForSpent(t *testing.T) {
	cases := []struct {
		spent string
		rate  string
		want  int64
	}{
		{"100", "1", 100},
		{"101", "0.5", 51},
		{"99.99", "1", 100},
		{"10", "2", 20},
		{"0.4", "1", 0},
	}
	for _, c := range cases {
		got := pointsForSpent(decimal.RequireFromString(c.spent), decimal.RequireFromString(c.rate))
		assert.Equal(t, c.want, got, "spent %s rate %s", c.spent, c.rate)
	}
}
