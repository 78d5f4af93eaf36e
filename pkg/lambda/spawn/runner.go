package spawn

import "sync"

// Runner decides how a detached function is started.
type Runner interface {
	Do(fn func())
}

// Async starts every function in its own goroutine and forgets it.
type Async struct{}

func (Async) Do(fn func()) {
	go fn()
}

// Tracked starts every function in its own goroutine and remembers it, so
// Wait can block until all of them have finished. The zero value is ready
// to use. A Tracked must not be copied after first use, and Do must not
// race with Wait.
type Tracked struct {
	wg sync.WaitGroup
}

func (t *Tracked) Do(fn func()) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		fn()
	}()
}

// Wait blocks until every function passed to Do before the call to Wait has
// returned. Do must not be called concurrently with Wait; submit everything
// first, then wait.
func (t *Tracked) Wait() {
	t.wg.Wait()
}
