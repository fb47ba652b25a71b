package validation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Roshick/go-autumn-extract/extract"
	"github.com/Roshick/go-autumn-extract/header"
	"github.com/Roshick/go-autumn-extract/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestBodyFromContext(t *testing.T) {
	t.Run("body in context", func(t *testing.T) {
		testBody := TestRequestBody{Name: "John", Email: "john@localhost.io"}
		ctx := ContextWithRequestBody(context.Background(), testBody)

		assert.Equal(t, testBody, RequestBodyFromContext[TestRequestBody](ctx))
	})

	t.Run("no body in context", func(t *testing.T) {
		assert.Equal(t, TestRequestBody{}, RequestBodyFromContext[TestRequestBody](context.Background()))
	})
}

func TestDefaultContextRequestBodyMiddlewareOptions(t *testing.T) {
	opts := DefaultContextRequestBodyMiddlewareOptions()

	require.NotNil(t, opts)
	assert.NotNil(t, opts.Validator)
}

func TestNewContextRequestBodyMiddleware(t *testing.T) {
	t.Run("with nil options", func(t *testing.T) {
		middleware := NewContextRequestBodyMiddleware[TestRequestBody](nil)
		assert.NotNil(t, middleware)
	})

	t.Run("valid JSON body", func(t *testing.T) {
		opts := DefaultContextRequestBodyMiddlewareOptions()
		middleware := NewContextRequestBodyMiddleware[TestRequestBody](opts)

		testBody := TestRequestBody{Name: "John", Email: "john@localhost.io"}
		bodyBytes, _ := json.Marshal(testBody)

		handlerCalled := false
		var receivedBody TestRequestBody
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
			receivedBody = RequestBodyFromContext[TestRequestBody](r.Context())
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(bodyBytes))
		req.Header.Set(header.ContentType, "application/json")
		rr := httptest.NewRecorder()

		middleware(testHandler).ServeHTTP(rr, req)

		assert.True(t, handlerCalled)
		assert.Equal(t, testBody, receivedBody)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("invalid JSON body", func(t *testing.T) {
		middleware := NewContextRequestBodyMiddleware[TestRequestBody](nil)

		handlerCalled := false
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("invalid json")))
		req.Header.Set(header.ContentType, "application/json")
		rr := httptest.NewRecorder()

		middleware(testHandler).ServeHTTP(rr, req)

		assert.False(t, handlerCalled)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var body ErrorBody
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "json", body.Kind)
	})

	t.Run("empty body", func(t *testing.T) {
		middleware := NewContextRequestBodyMiddleware[TestRequestBody](nil)

		handlerCalled := false
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("")))
		req.Header.Set(header.ContentType, "application/json")
		rr := httptest.NewRecorder()

		middleware(testHandler).ServeHTTP(rr, req)

		assert.False(t, handlerCalled)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejections are counted", func(t *testing.T) {
		provider, counter := testutils.NewCountingMeterProvider()
		middleware := NewContextRequestBodyMiddleware[TestRequestBody](&ContextRequestBodyMiddlewareOptions{
			Recorder: extract.NewRejectionRecorder(provider),
		})
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		for _, payload := range []string{`{"name":"John"}`, `{"name":`, `{}`} {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(payload)))
			req.Header.Set(header.ContentType, "application/json")
			middleware(testHandler).ServeHTTP(httptest.NewRecorder(), req)
		}

		require.Equal(t, int64(2), counter.Count())
		assert.Equal(t, ExtractorName, counter.Attribute(0, "extractor"))
		assert.Equal(t, "400", counter.Attribute(0, "status"))
		assert.Equal(t, "400", counter.Attribute(1, "status"))
	})

	t.Run("body violating rules", func(t *testing.T) {
		middleware := NewContextRequestBodyMiddleware[TestRequestBody](nil)

		handlerCalled := false
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(`{"email":"not-an-email"}`)))
		req.Header.Set(header.ContentType, "application/json")
		rr := httptest.NewRecorder()

		middleware(testHandler).ServeHTTP(rr, req)

		assert.False(t, handlerCalled)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var body ErrorBody
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "validation", body.Kind)
		assert.True(t, body.Violations.Has("name", "required"))
		assert.True(t, body.Violations.Has("email", "email"))
	})
}

func TestDefaultRequiredHeaderMiddlewareOptions(t *testing.T) {
	opts := DefaultRequiredHeaderMiddlewareOptions()

	require.NotNil(t, opts)
	assert.NotNil(t, opts.ErrorResponse)
}

func TestNewRequiredHeaderMiddleware(t *testing.T) {
	headerName := header.XRequestID

	t.Run("with nil options", func(t *testing.T) {
		middleware := NewRequiredHeaderMiddleware(headerName, nil)
		assert.NotNil(t, middleware)
	})

	t.Run("header present", func(t *testing.T) {
		middleware := NewRequiredHeaderMiddleware(headerName, DefaultRequiredHeaderMiddlewareOptions())

		handlerCalled := false
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(headerName, "header-value")
		rr := httptest.NewRecorder()

		middleware(testHandler).ServeHTTP(rr, req)

		assert.True(t, handlerCalled)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("header missing", func(t *testing.T) {
		middleware := NewRequiredHeaderMiddleware(headerName, nil)

		handlerCalled := false
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		middleware(testHandler).ServeHTTP(rr, req)

		assert.False(t, handlerCalled)
		assert.Equal(t, http.StatusPreconditionRequired, rr.Code)
	})
}
