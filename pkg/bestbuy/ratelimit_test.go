package bestbuy_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbuyapis/bestbuy-go/pkg/bestbuy"
)

func TestRateLimiterWait(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rate    float64
		burst   int
		daily   int64
		calls   int
		wantErr bool
	}{
		{
			name:  "allows calls within rate",
			rate:  100,
			burst: 10,
			daily: 50000,
			calls: 3,
		},
		{
			name:  "allows burst",
			rate:  100,
			burst: 5,
			daily: 50000,
			calls: 5,
		},
		{
			name:    "rejects when daily quota spent",
			rate:    100,
			burst:   10,
			daily:   2,
			calls:   3,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rl := bestbuy.NewRateLimiter(tt.rate, tt.burst, tt.daily)

			var lastErr error
			for i := 0; i < tt.calls; i++ {
				lastErr = rl.Wait(context.Background())
				if lastErr != nil {
					break
				}
			}

			if tt.wantErr {
				require.ErrorIs(t, lastErr, bestbuy.ErrDailyLimitReached)
			} else {
				require.NoError(t, lastErr)
			}
		})
	}
}

func TestRateLimiterAccounting(t *testing.T) {
	t.Parallel()

	rl := bestbuy.NewRateLimiter(100, 10, 10)

	assert.Equal(t, int64(0), rl.DailyCount())
	assert.Equal(t, int64(10), rl.Remaining())

	require.NoError(t, rl.Wait(context.Background()))
	require.NoError(t, rl.Wait(context.Background()))

	assert.Equal(t, int64(2), rl.DailyCount())
	assert.Equal(t, int64(8), rl.Remaining())
}

func TestRateLimiterWindowReset(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	currentTime := now

	rl := bestbuy.NewRateLimiter(
		100, 10, 2,
		bestbuy.WithRateLimiterNowFunc(func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			return currentTime
		}),
	)

	assert.Equal(t, now.Add(24*time.Hour), rl.ResetAt())

	// Spend the quota.
	require.NoError(t, rl.Wait(context.Background()))
	require.NoError(t, rl.Wait(context.Background()))
	require.ErrorIs(t, rl.Wait(context.Background()), bestbuy.ErrDailyLimitReached)

	// Advance past the window; the counter resets on the next call.
	mu.Lock()
	currentTime = now.Add(25 * time.Hour)
	mu.Unlock()

	require.NoError(t, rl.Wait(context.Background()))
	assert.Equal(t, int64(1), rl.DailyCount())
}

func TestRateLimiterContextCanceled(t *testing.T) {
	t.Parallel()

	// Very slow refill, burst of one.
	rl := bestbuy.NewRateLimiter(0.1, 1, 50000)

	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := rl.Wait(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter wait")
}
