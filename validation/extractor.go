package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"

	weberrors "github.com/Roshick/go-autumn-extract/errors"
	"github.com/Roshick/go-autumn-extract/extract"
	"github.com/go-playground/validator/v10"
)

const ExtractorName = "validated-json"

var (
	ErrTrailingData = errors.New("unexpected data after JSON value")
	ErrNullBody     = errors.New("null is not a valid request body")
)

// Body is implemented by request bodies that format their own errors. Both methods are called on
// the zero value and must not depend on its fields.
type Body interface {
	// JSONError formats a body that could not be decoded.
	JSONError(err error) any
	// ValidateError formats the rules a decoded body violated.
	ValidateError(violations Violations) any
}

// ValidatedJSONExtractor //

type ValidatedJSONExtractorOptions struct {
	Validator *validator.Validate
	// MaxBodyBytes limits the body size; 0 means unlimited. An oversized body counts as undecodable.
	MaxBodyBytes int64
}

func DefaultValidatedJSONExtractorOptions() *ValidatedJSONExtractorOptions {
	return &ValidatedJSONExtractorOptions{
		Validator:    DefaultValidator(),
		MaxBodyBytes: 0,
	}
}

// NewValidatedJSONExtractor decodes the request body into B and validates it. A body that cannot
// be decoded is never validated; either failure is answered with 400 and the body formatted by B.
func NewValidatedJSONExtractor[B Body](opts *ValidatedJSONExtractorOptions) extract.Extractor[B] {
	if opts == nil {
		opts = DefaultValidatedJSONExtractorOptions()
	}
	v := opts.Validator
	if v == nil {
		v = DefaultValidator()
	}
	maxBodyBytes := opts.MaxBodyBytes

	return func(req *http.Request) (B, *extract.Rejection) {
		var zero B

		var reader io.ReadCloser = http.NoBody
		if req.Body != nil {
			reader = req.Body
		}
		if maxBodyBytes > 0 {
			reader = http.MaxBytesReader(nil, reader, maxBodyBytes)
		}

		body := new(B)
		if err := decodeJSON(reader, body); err != nil {
			response := weberrors.NewBodyResponse(http.StatusBadRequest, zero.JSONError(err))
			return zero, extract.Reject(ExtractorName, http.StatusBadRequest, response, err)
		}

		if violations := validate(v, *body); len(violations) > 0 {
			response := weberrors.NewBodyResponse(http.StatusBadRequest, zero.ValidateError(violations))
			return zero, extract.Reject(ExtractorName, http.StatusBadRequest, response, violations)
		}

		return *body, nil
	}
}

// ValidatedJSON extracts a validated body with default options.
func ValidatedJSON[B Body](req *http.Request) (B, *extract.Rejection) {
	return NewValidatedJSONExtractor[B](nil)(req)
}

// decodeJSON decodes exactly one JSON value into v. Trailing data is an error, and so is a null
// body unless v points to a pointer.
func decodeJSON[B any](reader io.Reader, v *B) error {
	decoder := json.NewDecoder(reader)

	var raw json.RawMessage
	if err := decoder.Decode(&raw); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err != nil {
			return errors.Join(ErrTrailingData, err)
		}
		return ErrTrailingData
	}
	if bytes.Equal(raw, []byte("null")) && reflect.TypeFor[B]().Kind() != reflect.Pointer {
		return ErrNullBody
	}

	return json.Unmarshal(raw, v)
}
