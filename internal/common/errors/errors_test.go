package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	assert.Equal(t, "[NOT_FOUND] gone", New(ErrCodeNotFound, "gone").Error())

	cause := errors.New("connection refused")
	err := NewStorageError("save draw", cause)
	assert.Equal(t, "[STORAGE_ERROR] Storage operation failed: save draw: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "save draw", err.Details["operation"])
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  *AppError
		want int
	}{
		{NewValidationError("entries", "empty"), http.StatusBadRequest},
		{New(ErrCodeInvalidWinners, "x"), http.StatusBadRequest},
		{New(ErrCodeTooManyEntries, "x"), http.StatusBadRequest},
		{NewDrawNotFoundError("abc"), http.StatusNotFound},
		{NewStorageError("get", errors.New("x")), http.StatusServiceUnavailable},
		{New(ErrCodeRandomSource, "x"), http.StatusInternalServerError},
		{New(ErrCodeInternal, "x"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.err.Code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("create: %w", NewDrawNotFoundError("d1"))
	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.True(t, appErr.IsNotFound())
	assert.Equal(t, "d1", appErr.Details["draw_id"])

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestWithContext(t *testing.T) {
	err := Wrapf(errors.New("x"), ErrCodeInternal, "step %d", 3).
		WithContext("path", "/draws").
		WithRequestID("req-1")

	assert.Equal(t, "step 3", err.Message)
	assert.Equal(t, "/draws", err.Context["path"])
	assert.Equal(t, "req-1", err.RequestID)
	assert.True(t, err.IsInternal())
}
