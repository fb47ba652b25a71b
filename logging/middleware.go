package logging

import (
	"github.com/Roshick/go-autumn-slog/pkg/logging"
	aulogging "github.com/StephanHCB/go-autumn-logging"
	"github.com/go-chi/chi/v5/middleware"
	"net/http"
	"time"
)

// ContextLoggerMiddleware //

type ContextLoggerMiddlewareOptions struct {
}

func DefaultContextLoggerMiddlewareOptions() *ContextLoggerMiddlewareOptions {
	return &ContextLoggerMiddlewareOptions{}
}

// NewContextLoggerMiddleware puts the global slog logger into the request context, so that
// aulogging.Logger.Ctx picks up fields added further down the chain.
func NewContextLoggerMiddleware(opts *ContextLoggerMiddlewareOptions) func(http.Handler) http.Handler {
	if opts == nil {
		opts = DefaultContextLoggerMiddlewareOptions()
	}

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()

			if slogging, ok := aulogging.Logger.(*logging.Logging); ok {
				ctx = logging.ContextWithLogger(ctx, slogging.Logger())
			}

			next.ServeHTTP(w, req.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}

// RequestLoggerMiddleware //

type RequestLoggerMiddlewareOptions struct {
	// LoggerName is logged under LogFieldLogger.
	LoggerName string
}

func DefaultRequestLoggerMiddlewareOptions() *RequestLoggerMiddlewareOptions {
	return &RequestLoggerMiddlewareOptions{
		LoggerName: "request.incoming",
	}
}

// NewRequestLoggerMiddleware logs one line per request. Server errors, which include misconfigured
// static values, are logged as warnings.
func NewRequestLoggerMiddleware(opts *RequestLoggerMiddlewareOptions) func(next http.Handler) http.Handler {
	if opts == nil {
		opts = DefaultRequestLoggerMiddlewareOptions()
	}

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, req *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			t1 := time.Now()

			next.ServeHTTP(ww, req)

			ctx := req.Context()
			if logger := logging.FromContext(ctx); logger != nil {
				duration := time.Since(t1).Milliseconds()

				logger = logger.With(
					LogFieldRequestMethod, req.Method,
					LogFieldResponseStatus, ww.Status(),
					LogFieldURLPath, req.URL.Path,
					LogFieldUserAgent, req.UserAgent(),
					LogFieldLogger, opts.LoggerName,
					LogFieldEventDuration, duration,
				)
				subCtx := logging.ContextWithLogger(ctx, logger)

				if ww.Status() >= http.StatusInternalServerError {
					aulogging.Logger.Ctx(subCtx).Warn().Printf("%s %s -> %d FAILED (%d ms)", req.Method, req.URL.Path, ww.Status(), duration)
				} else {
					aulogging.Logger.Ctx(subCtx).Info().Printf("%s %s -> %d OK (%d ms)", req.Method, req.URL.Path, ww.Status(), duration)
				}
			}
		}
		return http.HandlerFunc(fn)
	}
}
