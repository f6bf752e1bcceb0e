package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/pttdigest"
	"github.com/fwojciec/pttdigest/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements pttdigest.DomainLimiter interface", func(t *testing.T) {
		t.Parallel()
		var _ pttdigest.DomainLimiter = crawl.NewDomainLimiter(1)
	})

	t.Run("first request is immediate", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10)

		start := time.Now()
		err := limiter.Wait(context.Background(), "www.pttweb.cc")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("spaces requests to the same host", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10) // 100ms between requests
		require.NoError(t, limiter.Wait(context.Background(), "www.pttweb.cc"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "www.pttweb.cc")

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("hosts are limited independently", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10)
		require.NoError(t, limiter.Wait(context.Background(), "www.pttweb.cc"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "mirror.example")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("zero rate never waits", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(0)

		start := time.Now()
		for i := 0; i < 5; i++ {
			require.NoError(t, limiter.Wait(context.Background(), "www.pttweb.cc"))
		}

		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(1)
		require.NoError(t, limiter.Wait(context.Background(), "www.pttweb.cc"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx, "www.pttweb.cc")
		assert.Error(t, err)
	})
}
