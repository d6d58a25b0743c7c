package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapHelpersCarryPredefinedCodes(t *testing.T) {
	cause := errors.New("boom")

	e := InvalidRequestWithError(cause)
	assert.Equal(t, ErrInvalidRequest.StatusCode, e.StatusCode)
	assert.Equal(t, ErrInvalidRequest.ErrorCode, e.ErrorCode)
	assert.Equal(t, "boom", e.Details)

	e = ValidationFailedWithError(cause)
	assert.Equal(t, ErrValidationFailed.StatusCode, e.StatusCode)
	assert.Equal(t, ErrValidationFailed.ErrorCode, e.ErrorCode)

	e = UnprocessableFileWithError(cause)
	assert.Equal(t, ErrUnprocessableFile.StatusCode, e.StatusCode)
	assert.Equal(t, ErrUnprocessableFile.ErrorCode, e.ErrorCode)
	assert.Equal(t, "boom", e.Message)
}

func TestAPIErrorInterface(t *testing.T) {
	e := New(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format")
	assert.Equal(t, "Invalid request format", e.Error())
}
