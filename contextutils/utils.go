package contextutils

import (
	"context"
)

// contextKey gives every type its own slot in a context.
type contextKey[B any] struct{}

// WithValue stores value under its type. A later call for the same type shadows the earlier one
// for everything derived from the returned context.
func WithValue[B any](ctx context.Context, value B) context.Context {
	return context.WithValue(ctx, contextKey[B]{}, value)
}

func GetValue[B any](ctx context.Context) *B {
	if value, ok := Lookup[B](ctx); ok {
		return &value
	}
	return nil
}

func Lookup[B any](ctx context.Context) (B, bool) {
	value, ok := ctx.Value(contextKey[B]{}).(B)
	return value, ok
}

func MustGetValue[B any](ctx context.Context) B {
	return ctx.Value(contextKey[B]{}).(B)
}
