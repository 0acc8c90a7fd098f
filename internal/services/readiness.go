package services

import (
	"sync"
	"time"
)

// settleDelay absorbs one render pass between resolution and dismissal of
// the loading overlay, so a fast fetch cannot beat initial mount.
const settleDelay = 100 * time.Millisecond

// ReadyLatch is the three-input gate deciding when the loading state may be
// dismissed: resolution finished, the presentation layer reported itself
// hydrated, and a normalized itinerary is present. All three must hold, and
// at least settleDelay must have passed since resolution.
type ReadyLatch struct {
	mu         sync.Mutex
	resolved   bool
	hydrated   bool
	hasData    bool
	resolvedAt time.Time
	settle     time.Duration
	now        func() time.Time
}

func NewReadyLatch() *ReadyLatch {
	return &ReadyLatch{settle: settleDelay, now: time.Now}
}

// MarkResolved records that the load (fetch or demo fallback) completed,
// successfully or not. Starts the settle window.
func (l *ReadyLatch) MarkResolved() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resolved = true
	l.resolvedAt = l.now()
}

// MarkHydrated records that the presentation layer finished initial mount.
func (l *ReadyLatch) MarkHydrated() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hydrated = true
}

// MarkData records whether a normalized itinerary is present.
func (l *ReadyLatch) MarkData(present bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hasData = present
}

// Ready reports whether the loading state may be dismissed.
func (l *ReadyLatch) Ready() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.resolved || !l.hydrated || !l.hasData {
		return false
	}
	return l.now().Sub(l.resolvedAt) >= l.settle
}

// Reset returns the latch to its initial state for a fresh load.
func (l *ReadyLatch) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resolved = false
	l.hydrated = false
	l.hasData = false
	l.resolvedAt = time.Time{}
}
