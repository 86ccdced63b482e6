package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorKinds(t *testing.T) {
	assert.True(t, errors.Is(ErrActivityNotFound, ErrNotFound))
	assert.Equal(t, "activity not found", ErrActivityNotFound.Error())
	assert.True(t, errors.Is(Invalid("bad"), ErrValidation))
	assert.True(t, errors.Is(Denied("nope"), ErrUnauthorized))
	assert.True(t, errors.Is(ErrInvalidCredentials, ErrUnauthorized))
	assert.True(t, errors.Is(ErrUsernameTaken, ErrConflict))

	wrapped := fmt.Errorf("%w: %w", ErrTransactionFailed, errors.New("disk full"))
	assert.True(t, errors.Is(wrapped, ErrTransactionFailed))
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{ErrLessonNotFound, http.StatusNotFound, "lesson not found"},
		{Invalid("answers must not be empty"), http.StatusBadRequest, "answers must not be empty"},
		{ErrInvalidCredentials, http.StatusUnauthorized, "invalid username or password"},
		{ErrPermissionDenied, http.StatusForbidden, "Forbidden"},
		{ErrEmailRegistered, http.StatusConflict, "email already registered"},
		{fmt.Errorf("%w: %w", ErrTransactionFailed, errors.New("disk full")), http.StatusInternalServerError, "Failed to save submission"},
		{errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		HandleError(c, tt.err)

		require.Equal(t, tt.status, w.Code, tt.err.Error())
		var body Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tt.status, body.Code)
		assert.Equal(t, tt.message, body.Message)
		assert.Nil(t, body.Data)
	}
}

func TestParamID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "42"}, {Key: "zero", Value: "0"}, {Key: "word", Value: "abc"}}

	id, err := ParamID(c, "id")
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)

	_, err = ParamID(c, "zero")
	assert.True(t, errors.Is(err, ErrValidation))
	_, err = ParamID(c, "word")
	assert.True(t, errors.Is(err, ErrValidation))
}
