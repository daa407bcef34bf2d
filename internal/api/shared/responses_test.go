package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()

	RespondWithJSON(rr, req, http.StatusCreated, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "world", body["hello"])
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/tasks/7", nil)
	rr := httptest.NewRecorder()

	RespondWithError(rr, req, http.StatusNotFound, "Task with id 7 not found")

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Task with id 7 not found", body.Detail)
}

func TestRespondWithValidationError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tasks", nil)
	rr := httptest.NewRecorder()

	RespondWithValidationError(rr, req, []FieldViolation{
		{Field: "title", Message: "is required and cannot be empty"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var body ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Detail, 1)
	assert.Equal(t, "title", body.Detail[0].Field)
}

func TestGetTraceIDWithoutSpanOrRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	assert.Empty(t, GetTraceID(req.Context()))
}
