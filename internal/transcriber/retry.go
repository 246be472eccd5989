package transcriber

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/scribeflow/scribeflow/internal/logger"
)

// retryPolicy retries a remote call with exponential backoff and jitter.
// Delay before the n-th retry (1-indexed) is
// initialDelay * base^(n-1) * uniform[0.5, 1.5); the jitter keeps
// concurrent clients from retrying in lockstep.
type retryPolicy struct {
	maxRetries   int
	initialDelay time.Duration
	backoffBase  float64

	// injectable for tests
	sleep  func(ctx context.Context, d time.Duration) error
	jitter func() float64 // uniform [0, 1)
}

func newRetryPolicy(maxRetries int, initialDelay time.Duration, backoffBase float64) *retryPolicy {
	return &retryPolicy{
		maxRetries:   maxRetries,
		initialDelay: initialDelay,
		backoffBase:  backoffBase,
		sleep:        sleepContext,
		jitter:       rand.Float64,
	}
}

// do runs fn up to maxRetries+1 times. It returns the number of attempts
// made and the last error once retries are exhausted or the context is
// cancelled during a backoff delay.
func (p *retryPolicy) do(ctx context.Context, log logger.Logger, label string, fn func() error) (int, error) {
	for attempt := 0; ; attempt++ {
		err := fn()
		if err == nil {
			return attempt + 1, nil
		}

		if attempt == p.maxRetries {
			log.Error(ctx, "%s failed after %d retries: %v", label, p.maxRetries, err)
			return attempt + 1, err
		}

		delay := time.Duration(float64(p.initialDelay) *
			math.Pow(p.backoffBase, float64(attempt)) *
			(0.5 + p.jitter()))

		log.Warn(ctx, "Attempt %d failed for %s: %v. Retrying in %.2fs", attempt+1, label, err, delay.Seconds())

		if serr := p.sleep(ctx, delay); serr != nil {
			return attempt + 1, serr
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
