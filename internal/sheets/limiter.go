package sheets

import (
	"time"

	"golang.org/x/time/rate"
)

// NewLimiter returns a blocking limiter that spaces guarded calls at least
// minInterval apart in wall-clock time. Burst is 1, so the gap is enforced
// between every pair of calls sharing the limiter, regardless of caller.
// Waiting is the only behavior: the limiter delays, it never rejects.
func NewLimiter(minInterval time.Duration) *rate.Limiter {
	return rate.NewLimiter(rate.Every(minInterval), 1)
}
