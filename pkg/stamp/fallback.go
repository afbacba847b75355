package stamp

import (
	"sync"
	"time"
)

// FallbackClock composes a primary and a standby TimeSource. Reads go
// to the primary until it fails FailureThreshold times in a row; the
// primary is then skipped for ReopenTimeout and every read is served
// by the standby. After the timeout the next read probes the primary
// again, and a single success closes the breaker.
//
// Primary errors are absorbed only when the standby read succeeds;
// callers can watch Degraded to log or alert on failover.
type FallbackClock struct {
	mu        sync.Mutex
	primary   TimeSource
	standby   TimeSource
	threshold int
	reopen    time.Duration
	failures  int
	openUntil time.Time
}

func NewFallbackClock(primary, standby TimeSource, failureThreshold int, reopenTimeout time.Duration) *FallbackClock {
	if failureThreshold <= 0 {
		failureThreshold = 3
	}
	if reopenTimeout <= 0 {
		reopenTimeout = 10 * time.Second
	}
	return &FallbackClock{
		primary:   primary,
		standby:   standby,
		threshold: failureThreshold,
		reopen:    reopenTimeout,
	}
}

// Degraded reports whether reads are currently bypassing the primary.
func (f *FallbackClock) Degraded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return time.Now().Before(f.openUntil)
}

func (f *FallbackClock) Tick() (Inst, error) {
	if f.tryPrimary() {
		inst, err := f.primary.Tick()
		if err == nil {
			f.recordSuccess()
			return inst, nil
		}
		f.recordFailure()
	}
	return f.standby.Tick()
}

func (f *FallbackClock) tryPrimary() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !time.Now().Before(f.openUntil)
}

func (f *FallbackClock) recordSuccess() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = 0
	f.openUntil = time.Time{}
}

func (f *FallbackClock) recordFailure() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures++
	if f.failures >= f.threshold {
		f.openUntil = time.Now().Add(f.reopen)
		f.failures = 0
	}
}
