package static

import (
	"fmt"
	"net/http"

	weberrors "github.com/Roshick/go-autumn-extract/errors"
	"github.com/Roshick/go-autumn-extract/extract"
	aulogging "github.com/StephanHCB/go-autumn-logging"
	"github.com/go-chi/render"
)

const ExtractorName = "static"

// StaticExtractor //

type StaticExtractorOptions struct {
	// Strict panics on a missing registration instead of logging it. Meant for tests and
	// development servers.
	Strict        bool
	ErrorResponse render.Renderer
}

func DefaultStaticExtractorOptions() *StaticExtractorOptions {
	return &StaticExtractorOptions{
		Strict:        false,
		ErrorResponse: weberrors.NewUnknownErrorResponse(),
	}
}

// NewStaticExtractor returns the extractor for values registered with New. A
// missing registration is a misconfigured middleware chain and is answered with a 500 that does
// not reveal the type.
func NewStaticExtractor[T any](opts *StaticExtractorOptions) extract.Extractor[Static[T]] {
	if opts == nil {
		opts = DefaultStaticExtractorOptions()
	}
	errorResponse := opts.ErrorResponse
	if errorResponse == nil {
		errorResponse = weberrors.NewUnknownErrorResponse()
	}

	return func(req *http.Request) (Static[T], *extract.Rejection) {
		ctx := req.Context()
		if value, ok := StaticFromContext[T](ctx); ok {
			return value, nil
		}

		err := fmt.Errorf("failed to extract %s, is it added via the static middleware", Static[T]{})
		if opts.Strict {
			panic(err)
		}
		aulogging.Logger.Ctx(ctx).Error().WithErr(err).Print("static value missing from request context")

		return Static[T]{}, extract.Reject(ExtractorName, http.StatusInternalServerError, errorResponse, err)
	}
}

// FromRequest extracts a static value with default options.
func FromRequest[T any](req *http.Request) (Static[T], *extract.Rejection) {
	return NewStaticExtractor[T](nil)(req)
}
