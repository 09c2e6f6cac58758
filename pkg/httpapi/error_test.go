package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_Status(t *testing.T) {
	cases := []struct {
		code   Code
		status int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeInvalidID, http.StatusBadRequest},
		{CodeInvalidBody, http.StatusBadRequest},
		{CodeInvalidInput, http.StatusBadRequest},
		{CodeInvalidRange, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{CodeInternal, http.StatusInternalServerError},
		{Code("something_new"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.code.Status(), "code %q", tc.code)
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteError(rec, CodeInvalidRange, "from and to must be ISO days"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, CodeInvalidRange, envelope.Code)
	assert.Equal(t, "from and to must be ISO days", envelope.Message)
}

func TestWriteError_StatusFollowsCode(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteError(rec, CodeNotFound, "technician not found"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWriteJSON_NilPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteJSON(rec, http.StatusNoContent, nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}
