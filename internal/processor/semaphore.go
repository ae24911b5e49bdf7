package processor

import (
	"context"
	"sync/atomic"
)

// admission is a counting semaphore bounding how many videos are processed at once.
// With a single slot it makes processing single-flight across all chats.
type admission struct {
	slots   chan struct{}
	waiting atomic.Int32
}

// newAdmission creates a semaphore with the given capacity (at least one)
func newAdmission(capacity int) *admission {
	if capacity < 1 {
		capacity = 1
	}
	return &admission{
		slots: make(chan struct{}, capacity),
	}
}

// acquire takes a slot, blocking until one frees up or ctx is done
func (a *admission) acquire(ctx context.Context) error {
	a.waiting.Add(1)
	defer a.waiting.Add(-1)

	select {
	case a.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// release frees a slot taken by acquire
func (a *admission) release() {
	<-a.slots
}

// busy reports whether every slot is taken
func (a *admission) busy() bool {
	return len(a.slots) == cap(a.slots)
}

// queued is the number of callers blocked in acquire
func (a *admission) queued() int {
	return int(a.waiting.Load())
}
