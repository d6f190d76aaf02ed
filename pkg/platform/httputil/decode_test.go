package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "librarian/pkg/domain-errors"
)

// testRequest is a simple test struct for JSON decoding
type testRequest struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// validatingRequest implements Validatable
type validatingRequest struct {
	Name string `json:"name"`
}

func (r *validatingRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

// fullRequest implements all preparation interfaces
type fullRequest struct {
	Name       string `json:"name"`
	normalized bool
	validated  bool
}

func (r *fullRequest) Normalize() {
	r.normalized = true
	r.Name = strings.TrimSpace(r.Name)
}

func (r *fullRequest) Validate() error {
	r.validated = true
	if r.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	return errResp
}

func TestDecodeJSON(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("successful decode", func(t *testing.T) {
		body := `{"name":"test","value":42}`
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		result, ok := DecodeJSON[testRequest](w, req, logger, ctx, "test-request-id")

		assert.True(t, ok)
		require.NotNil(t, result)
		assert.Equal(t, "test", result.Name)
		assert.Equal(t, 42, result.Value)
	})

	t.Run("invalid JSON returns error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{invalid json}`))
		w := httptest.NewRecorder()

		result, ok := DecodeJSON[testRequest](w, req, logger, ctx, "test-request-id")

		assert.False(t, ok)
		assert.Nil(t, result)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrorResponse{Message: "invalid request body", ErrorCode: http.StatusBadRequest}, decodeError(t, w))
	})

	t.Run("empty body returns error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(""))
		w := httptest.NewRecorder()

		result, ok := DecodeJSON[testRequest](w, req, logger, ctx, "test-request-id")

		assert.False(t, ok)
		assert.Nil(t, result)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("oversized body returns 413", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"`+strings.Repeat("x", 64)+`"}`))
		w := httptest.NewRecorder()
		req.Body = http.MaxBytesReader(w, req.Body, 16)

		_, ok := DecodeJSON[testRequest](w, req, logger, ctx, "test-request-id")

		assert.False(t, ok)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestDecodeAndPrepare(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("successful decode and validate", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"test"}`))
		w := httptest.NewRecorder()

		result, ok := DecodeAndPrepare[validatingRequest](w, req, logger, ctx, "test-request-id")

		assert.True(t, ok)
		require.NotNil(t, result)
		assert.Equal(t, "test", result.Name)
	})

	t.Run("plain validation error maps to 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":""}`))
		w := httptest.NewRecorder()

		result, ok := DecodeAndPrepare[validatingRequest](w, req, logger, ctx, "test-request-id")

		assert.False(t, ok)
		assert.Nil(t, result)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "name is required", decodeError(t, w).Message)
	})

	t.Run("normalizes before validating", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"   "}`))
		w := httptest.NewRecorder()

		_, ok := DecodeAndPrepare[fullRequest](w, req, logger, ctx, "test-request-id")

		assert.False(t, ok, "whitespace-only name must be rejected after trimming")
	})

	t.Run("calls all preparation methods", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":" test "}`))
		w := httptest.NewRecorder()

		result, ok := DecodeAndPrepare[fullRequest](w, req, logger, ctx, "test-request-id")

		assert.True(t, ok)
		require.NotNil(t, result)
		assert.True(t, result.normalized, "Normalize() should have been called")
		assert.True(t, result.validated, "Validate() should have been called")
		assert.Equal(t, "test", result.Name)
	})
}

func TestPrepareRequest(t *testing.T) {
	assert.NoError(t, PrepareRequest(&validatingRequest{Name: "test"}))
	assert.ErrorContains(t, PrepareRequest(&validatingRequest{}), "name is required")
	assert.NoError(t, PrepareRequest(&testRequest{Name: "test"}))
}

// domainErrorRequest returns a domain error from Validate()
type domainErrorRequest struct {
	ID string `json:"id"`
}

func (r *domainErrorRequest) Validate() error {
	if r.ID == "" {
		return dErrors.New(dErrors.CodeConflict, "id already taken")
	}
	return nil
}

func TestDecodeAndPrepare_PreservesDomainError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"id":""}`))
	w := httptest.NewRecorder()

	result, ok := DecodeAndPrepare[domainErrorRequest](w, req, logger, context.Background(), "test-request-id")

	assert.False(t, ok)
	assert.Nil(t, result)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, ErrorResponse{Message: "id already taken", ErrorCode: http.StatusConflict}, decodeError(t, w))
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=3&size=abc", nil)

	page, err := QueryInt(req, "page", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, page)

	missing, err := QueryInt(req, "limit", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, missing)

	_, err = QueryInt(req, "size", 10)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}
