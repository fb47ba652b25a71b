package validation

import (
	"context"

	"github.com/Roshick/go-autumn-extract/contextutils"
)

type requestBody[B any] struct {
	value B
}

// RequestBodyFromContext returns the body stored by the context request body middleware, or the
// zero value if there is none.
func RequestBodyFromContext[B any](ctx context.Context) B {
	body, _ := contextutils.Lookup[requestBody[B]](ctx)
	return body.value
}

func ContextWithRequestBody[B any](ctx context.Context, body B) context.Context {
	return contextutils.WithValue(ctx, requestBody[B]{value: body})
}
