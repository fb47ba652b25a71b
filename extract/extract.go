// Package extract adapts typed request extractors to plain http.Handlers.
//
// An Extractor builds one value out of an incoming request. When it cannot, it returns a
// Rejection carrying the response to send instead; the handler is never invoked in that case.
package extract

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"
)

type Extractor[T any] func(req *http.Request) (T, *Rejection)

// Rejection is the response an Extractor sends instead of running the handler.
type Rejection struct {
	Status   int
	Response render.Renderer
	Cause    error

	// Extractor names the rejecting extractor in metrics.
	Extractor string
}

func Reject(extractor string, status int, response render.Renderer, cause error) *Rejection {
	return &Rejection{
		Status:    status,
		Response:  response,
		Cause:     cause,
		Extractor: extractor,
	}
}

func (r *Rejection) Error() string {
	if r.Cause == nil {
		return fmt.Sprintf("%s rejected request with status %d", r.Extractor, r.Status)
	}
	return fmt.Sprintf("%s rejected request with status %d: %s", r.Extractor, r.Status, r.Cause)
}

func (r *Rejection) Unwrap() error {
	return r.Cause
}

// Write renders the rejection response under the rejection status; the response may still set a
// status of its own. Rendering failures panic, like everywhere else in this module.
func (r *Rejection) Write(w http.ResponseWriter, req *http.Request) {
	render.Status(req, r.Status)
	if err := render.Render(w, req, r.Response); err != nil {
		panic(err)
	}
}

// Handler //

type HandlerOptions struct {
	// Recorder counts rejections. Nil means a recorder on the global meter provider.
	Recorder *RejectionRecorder
}

func DefaultHandlerOptions() *HandlerOptions {
	return &HandlerOptions{}
}

func NewHandler[T any](extractor Extractor[T], fn func(http.ResponseWriter, *http.Request, T), opts *HandlerOptions) http.HandlerFunc {
	recorder := recorderFromOptions(opts)

	return func(w http.ResponseWriter, req *http.Request) {
		value, rejection := extractor(req)
		if rejection != nil {
			recorder.Reply(w, req, rejection)
			return
		}
		fn(w, req, value)
	}
}

// NewHandler2 runs both extractors in order; the second one only runs when the first succeeded.
func NewHandler2[A, B any](first Extractor[A], second Extractor[B], fn func(http.ResponseWriter, *http.Request, A, B), opts *HandlerOptions) http.HandlerFunc {
	recorder := recorderFromOptions(opts)

	return func(w http.ResponseWriter, req *http.Request) {
		a, rejection := first(req)
		if rejection != nil {
			recorder.Reply(w, req, rejection)
			return
		}
		b, rejection := second(req)
		if rejection != nil {
			recorder.Reply(w, req, rejection)
			return
		}
		fn(w, req, a, b)
	}
}

func Handler[T any](extractor Extractor[T], fn func(http.ResponseWriter, *http.Request, T)) http.HandlerFunc {
	return NewHandler(extractor, fn, nil)
}

func Handler2[A, B any](first Extractor[A], second Extractor[B], fn func(http.ResponseWriter, *http.Request, A, B)) http.HandlerFunc {
	return NewHandler2(first, second, fn, nil)
}

// Reply records the rejection and writes its response.
func (r *RejectionRecorder) Reply(w http.ResponseWriter, req *http.Request, rejection *Rejection) {
	r.Record(req.Context(), rejection)
	rejection.Write(w, req)
}

func recorderFromOptions(opts *HandlerOptions) *RejectionRecorder {
	if opts == nil {
		opts = DefaultHandlerOptions()
	}
	if opts.Recorder != nil {
		return opts.Recorder
	}
	return NewRejectionRecorder(nil)
}
