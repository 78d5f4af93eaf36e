package spawn

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ib-77/lambda3/pkg/lambda"
)

// Deferred returns an activator for action. The action is not run and no
// goroutine exists until the activator is called. Every call starts a new
// goroutine and returns its Handle.
//
// Deferred panics if action is nil.
func Deferred(action func()) func() *Handle {
	if action == nil {
		panic("spawn: nil action")
	}
	return DeferredContext(context.Background(), func(context.Context) { action() })
}

// DeferredContext is Deferred for actions that take a context. The context
// is handed to the action unchanged and also carries options (see WithLogger).
//
// DeferredContext panics if action is nil.
func DeferredContext(ctx context.Context, action func(ctx context.Context)) func() *Handle {
	if action == nil {
		panic("spawn: nil action")
	}

	return func() *Handle {
		h := newHandle()
		logger := GetLogger(ctx, nil)

		go func() {
			defer close(h.done)
			defer recoverAction(logger, h.id)

			action(ctx)
		}()

		return h
	}
}

// DeferredFunc returns Deferred itself as a value, for code that composes
// factories.
func DeferredFunc() func(action func()) func() *Handle {
	return Deferred
}

func recoverAction(logger *zap.Logger, id uuid.UUID) {
	r := recover()
	if r == nil {
		return
	}

	err := &lambda.ActionError{HandleID: id, Value: r}
	logger.Error("action panicked",
		zap.String("handle", id.String()),
		zap.Error(err))
}
