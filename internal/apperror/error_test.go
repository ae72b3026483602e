package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	assert.Equal(t, "bad_request: Invalid request", ErrBadRequest.Error())

	wrapped := ErrInternal.WithInternal(errors.New("disk full"))
	assert.Equal(t, "internal_error: An internal error occurred (disk full)", wrapped.Error())
}

func TestError_IsAndUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := fmt.Errorf("handler: %w", NewSessionNotFound("abc").WithInternal(inner))

	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, err, inner)
	assert.NotErrorIs(t, err, ErrBadRequest)
}

func TestError_WithMessageKeepsSentinel(t *testing.T) {
	err := NewBadRequest("index must be a number")
	assert.Equal(t, "index must be a number", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.Equal(t, "Invalid request", ErrBadRequest.Message, "sentinel must not be mutated")
}

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"app error", ErrSessionConflict, http.StatusConflict, "session_conflict"},
		{"rate limited", ErrTooManyRequests, http.StatusTooManyRequests, "too_many_requests"},
		{"wrapped app error", fmt.Errorf("x: %w", ErrTargetNotFound), http.StatusNotFound, "target_not_found"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := ToHTTPError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			errObj := body["error"].(map[string]any)
			assert.Equal(t, tt.wantCode, errObj["code"])
		})
	}
}

func TestWriteError(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	req := httptest.NewRequest(http.MethodPost, "/live/carousel/jump/9", nil)
	rec := httptest.NewRecorder()

	WriteError(rec, req, log, NewBadRequest("index out of range"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp map[string]map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bad_request", resp["error"]["code"])
	assert.Equal(t, "index out of range", resp["error"]["message"])
}

func TestWriteError_Head(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	req := httptest.NewRequest(http.MethodHead, "/", nil)
	rec := httptest.NewRecorder()

	WriteError(rec, req, log, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Body.String())
}
