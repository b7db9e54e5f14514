package errors

import (
	"net/http"
	"testing"

	"adboard/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrAdNotFound.WrapMessage("ad 42")

	assert.True(t, errors.Is(err, ErrAdNotFound))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
	assert.Contains(t, err.Error(), "ad 42")
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("title too short")

	assert.Equal(t, "title too short", detailed.Details())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), detailed.ErrorCode())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create ad")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(err))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
}

func TestHTTPStatus_PlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestHTTPStatus_Taxonomy(t *testing.T) {
	cases := map[*BaseError]int{
		ErrImageNotFound:      http.StatusNotFound,
		ErrInvalidCredentials: http.StatusUnauthorized,
		ErrUnauthenticated:    http.StatusUnauthorized,
		ErrForbidden:          http.StatusForbidden,
		ErrEmptyImage:         http.StatusBadRequest,
		ErrInvalidPhone:       http.StatusBadRequest,
		ErrUserAlreadyExists:  http.StatusBadRequest,
		ErrConflict:           http.StatusConflict,
	}
	for err, status := range cases {
		assert.Equal(t, status, HTTPStatus(err), err.ErrorCode())
	}
}
