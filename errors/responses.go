package errors

import (
	"encoding/json"
	"github.com/go-chi/render"
	"net/http"
)

// Base error response structure
type ErrorResponse struct {
	HTTPStatusCode int    `json:"-"`
	StatusText     string `json:"status"`
	Message        string `json:"message"`
}

func (e *ErrorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func (e *ErrorResponse) StatusCode() int {
	return e.HTTPStatusCode
}

// BodyResponse renders a caller-defined body as-is under the given status code.
type BodyResponse struct {
	HTTPStatusCode int
	Body           any
}

func NewBodyResponse(status int, body any) *BodyResponse {
	return &BodyResponse{
		HTTPStatusCode: status,
		Body:           body,
	}
}

func (e *BodyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func (e *BodyResponse) StatusCode() int {
	return e.HTTPStatusCode
}

func (e *BodyResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Body)
}

// Common HTTP error responses

// BadRequestResponse represents a 400 Bad Request error
type BadRequestResponse struct {
	ErrorResponse
}

func NewBadRequestResponse(message string) *BadRequestResponse {
	if message == "" {
		message = "Invalid request"
	}
	return &BadRequestResponse{
		ErrorResponse: ErrorResponse{
			HTTPStatusCode: http.StatusBadRequest,
			StatusText:     "Bad Request",
			Message:        message,
		},
	}
}

// PreconditionRequiredResponse represents a 428 Precondition Required error
type PreconditionRequiredResponse struct {
	ErrorResponse
}

func NewPreconditionRequiredResponse(message string) *PreconditionRequiredResponse {
	if message == "" {
		message = "Missing required precondition"
	}
	return &PreconditionRequiredResponse{
		ErrorResponse: ErrorResponse{
			HTTPStatusCode: http.StatusPreconditionRequired,
			StatusText:     "Precondition Required",
			Message:        message,
		},
	}
}

// InternalServerErrorResponse represents a 500 Internal Server Error
type InternalServerErrorResponse struct {
	ErrorResponse
}

func NewInternalServerErrorResponse(message string) *InternalServerErrorResponse {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return &InternalServerErrorResponse{
		ErrorResponse: ErrorResponse{
			HTTPStatusCode: http.StatusInternalServerError,
			StatusText:     "Internal Server Error",
			Message:        message,
		},
	}
}

// Convenience functions for common use cases

func NewInvalidRequestBodyResponse() *BadRequestResponse {
	return NewBadRequestResponse("Invalid request body")
}

func NewMissingRequiredHeaderResponse() *PreconditionRequiredResponse {
	return NewPreconditionRequiredResponse("Missing required header")
}

// NewUnknownErrorResponse is returned for server misconfiguration. The message is fixed and never
// names internal types.
func NewUnknownErrorResponse() *InternalServerErrorResponse {
	return NewInternalServerErrorResponse("Unknown error occurred!")
}

func NewPanicRecoveryResponse() *InternalServerErrorResponse {
	return NewInternalServerErrorResponse("An unexpected error occurred")
}
