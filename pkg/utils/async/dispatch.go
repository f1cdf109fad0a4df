package async

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tq-lab/maturika/pkg/utils/logging"
)

// Dispatch executes a handler function asynchronously in a new
// goroutine. It detaches from the request context so the handler
// outlives the request, but preserves the logger. Errors and panics
// are logged and never propagate.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	bgCtx := logging.With(context.Background(), logging.From(ctx))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.From(bgCtx).Error("panic in async handler", "panic", r)
			}
		}()

		if err := handler(bgCtx); err != nil {
			logging.From(bgCtx).Error("async handler failed", "error", goerr.Unwrap(err))
		}
	}()
}
