// Package static attaches long-lived, read-only values to every request and hands them back to
// handlers by type.
//
//	router.Use(static.New(&encoder))
//	router.Get("/", extract.Handler(static.FromRequest[Encoder], handle))
package static

import (
	"context"
	"fmt"
	"net/http"
	"reflect"

	"github.com/Roshick/go-autumn-extract/contextutils"
)

// Static is a handle to a value registered with the static middleware. Copying it is cheap; all
// copies share the registered value, which must not be mutated.
type Static[T any] struct {
	value *T
}

func (s Static[T]) Get() T {
	return *s.value
}

func (s Static[T]) Ptr() *T {
	return s.value
}

func (s Static[T]) String() string {
	return fmt.Sprintf("Static[%s]", typeName[T]())
}

func ContextWithStatic[T any](ctx context.Context, value *T) context.Context {
	return contextutils.WithValue(ctx, Static[T]{value: value})
}

func StaticFromContext[T any](ctx context.Context) (Static[T], bool) {
	return contextutils.Lookup[Static[T]](ctx)
}

// StaticMiddleware //

// New stores value in the context of every request before passing it on. Of two middlewares
// registering the same type, the one closer to the handler wins.
func New[T any](value *T) func(next http.Handler) http.Handler {
	if value == nil {
		panic(fmt.Sprintf("static middleware for %s needs a value", typeName[T]()))
	}

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, req *http.Request) {
			ctx := ContextWithStatic(req.Context(), value)
			next.ServeHTTP(w, req.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
