package resiliency

import (
	weberrors "github.com/Roshick/go-autumn-extract/errors"
	"github.com/Roshick/go-autumn-extract/logging"
	"github.com/go-chi/render"
	"net/http"
	"runtime/debug"

	aulogging "github.com/StephanHCB/go-autumn-logging"
)

// RecoverPanicMiddleware //

type RecoverPanicMiddlewareOptions struct {
	ErrorResponse render.Renderer
}

func DefaultRecoverPanicMiddlewareOptions() *RecoverPanicMiddlewareOptions {
	return &RecoverPanicMiddlewareOptions{
		ErrorResponse: weberrors.NewPanicRecoveryResponse(),
	}
}

// NewRecoverPanicMiddleware turns panics, e.g. from a strict static extractor, into a logged
// 500. http.ErrAbortHandler is left alone.
func NewRecoverPanicMiddleware(opts *RecoverPanicMiddlewareOptions) func(next http.Handler) http.Handler {
	if opts == nil {
		opts = DefaultRecoverPanicMiddlewareOptions()
	}

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				ctx := req.Context()
				aulogging.Logger.Ctx(ctx).Error().With(logging.LogFieldStackTrace, string(debug.Stack())).Printf("recovered from panic: %v", rvr)
				if err := render.Render(w, req, opts.ErrorResponse); err != nil {
					panic(err)
				}
			}()

			next.ServeHTTP(w, req)
		}
		return http.HandlerFunc(fn)
	}
}
