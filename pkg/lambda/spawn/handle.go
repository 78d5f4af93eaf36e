package spawn

import (
	"time"

	"github.com/google/uuid"
)

// Handle refers to one running (or finished) goroutine started by an
// activator. A zero Handle has no goroutine behind it and reports as done.
type Handle struct {
	id        uuid.UUID
	createdAt time.Time
	done      chan struct{}
}

var closed = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

func newHandle() *Handle {
	return &Handle{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}
}

func (h *Handle) ID() uuid.UUID {
	return h.id
}

// CreatedAt is the activation time (UTC).
func (h *Handle) CreatedAt() time.Time {
	return h.createdAt
}

// Done is closed once the action has returned or panicked.
func (h *Handle) Done() <-chan struct{} {
	if h.done == nil {
		return closed
	}
	return h.done
}

// Wait blocks until the action has finished. Everything the action wrote
// is visible to the caller after Wait returns.
func (h *Handle) Wait() {
	<-h.Done()
}
