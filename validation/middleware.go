package validation

import (
	weberrors "github.com/Roshick/go-autumn-extract/errors"
	"github.com/Roshick/go-autumn-extract/extract"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"net/http"
)

// ContextRequestBodyMiddleware //

type ContextRequestBodyMiddlewareOptions struct {
	Validator    *validator.Validate
	MaxBodyBytes int64
	// Recorder counts rejections. Nil means a recorder on the global meter provider.
	Recorder *extract.RejectionRecorder
}

func DefaultContextRequestBodyMiddlewareOptions() *ContextRequestBodyMiddlewareOptions {
	return &ContextRequestBodyMiddlewareOptions{
		Validator: DefaultValidator(),
	}
}

// NewContextRequestBodyMiddleware runs the validated JSON extractor ahead of the handler and
// stores the body for RequestBodyFromContext.
func NewContextRequestBodyMiddleware[B Body](opts *ContextRequestBodyMiddlewareOptions) func(next http.Handler) http.Handler {
	if opts == nil {
		opts = DefaultContextRequestBodyMiddlewareOptions()
	}

	extractor := NewValidatedJSONExtractor[B](&ValidatedJSONExtractorOptions{
		Validator:    opts.Validator,
		MaxBodyBytes: opts.MaxBodyBytes,
	})
	recorder := opts.Recorder
	if recorder == nil {
		recorder = extract.NewRejectionRecorder(nil)
	}

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, req *http.Request) {
			body, rejection := extractor(req)
			if rejection != nil {
				recorder.Reply(w, req, rejection)
				return
			}
			ctx := ContextWithRequestBody(req.Context(), body)
			next.ServeHTTP(w, req.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}

// RequiredHeaderMiddleware //

type RequiredHeaderMiddlewareOptions struct {
	ErrorResponse render.Renderer
}

func DefaultRequiredHeaderMiddlewareOptions() *RequiredHeaderMiddlewareOptions {
	return &RequiredHeaderMiddlewareOptions{
		ErrorResponse: weberrors.NewMissingRequiredHeaderResponse(),
	}
}

func NewRequiredHeaderMiddleware(headerName string, opts *RequiredHeaderMiddlewareOptions) func(next http.Handler) http.Handler {
	if opts == nil {
		opts = DefaultRequiredHeaderMiddlewareOptions()
	}

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, req *http.Request) {
			if req.Header.Get(headerName) == "" {
				if err := render.Render(w, req, opts.ErrorResponse); err != nil {
					panic(err)
				}
				return
			}
			next.ServeHTTP(w, req)
		}
		return http.HandlerFunc(fn)
	}
}
