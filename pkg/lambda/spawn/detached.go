package spawn

import (
	"context"

	"github.com/google/uuid"
)

// Detached returns a consumer that starts each action in a new goroutine
// and keeps no handle. Completion order relative to the caller is not
// defined.
func Detached() func(action func()) {
	return DetachedOn(Async{})
}

// DetachedOn is Detached with the goroutine started through r.
// Passing a *Tracked lets the caller wait for detached work.
func DetachedOn(r Runner) func(action func()) {
	return DetachedContext(context.Background(), r)
}

// DetachedContext is DetachedOn with options (see WithLogger) read from ctx.
func DetachedContext(ctx context.Context, r Runner) func(action func()) {
	if r == nil {
		r = Async{}
	}
	logger := GetLogger(ctx, nil)

	return func(action func()) {
		if action == nil {
			panic("spawn: nil action")
		}

		id := uuid.New()
		r.Do(func() {
			defer recoverAction(logger, id)
			action()
		})
	}
}
