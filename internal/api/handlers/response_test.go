package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError_Kinds(t *testing.T) {
	tests := []struct {
		status int
		kind   string
	}{
		{http.StatusBadRequest, KindValidation},
		{http.StatusConflict, KindConflict},
		{http.StatusNotFound, KindNotFound},
		{http.StatusForbidden, KindForbidden},
		{http.StatusTooManyRequests, KindRateLimited},
		{http.StatusBadGateway, KindInternal},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		RespondError(rec, tt.status, "boom")

		var body ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, tt.status, rec.Code)
		assert.Equal(t, tt.kind, body.Kind)
		assert.Equal(t, "boom", body.Message)
	}
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"ok"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "ok", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"ok","extra":1}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}{"name":"b"}`))
	assert.Error(t, DecodeJSON(r, &dst))
}
