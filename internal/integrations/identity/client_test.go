package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fideslex/booking-service/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "secret", 2*time.Second, logger.NewNop())
}

func TestSignUp_Created(t *testing.T) {
	var got SignUpRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, signUpPath, r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":"usr_42","email":"ana@example.com"}}`))
	})

	account, err := client.SignUp(context.Background(), &SignUpRequest{
		Email: "ana@example.com", Password: "p4ss", Name: "Ana Ruiz",
	})

	require.NoError(t, err)
	assert.Equal(t, "usr_42", account.ID)
	assert.Equal(t, "ana@example.com", got.Email)
	assert.Equal(t, "Ana Ruiz", got.Name)
}

func TestSignUp_IDInSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"session":{"user":{"id":"usr_7"}}}`))
	})

	account, err := client.SignUp(context.Background(), &SignUpRequest{Email: "b@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "usr_7", account.ID)
	assert.Equal(t, "b@example.com", account.Email)
}

func TestSignUp_EmailTaken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":"USER_ALREADY_EXISTS","message":"User already exists"}`))
	})

	_, err := client.SignUp(context.Background(), &SignUpRequest{Email: "dup@example.com"})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignUp_UnexpectedStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.SignUp(context.Background(), &SignUpRequest{Email: "x@example.com"})

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestSignUp_MissingUserID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.SignUp(context.Background(), &SignUpRequest{Email: "x@example.com"})

	assert.ErrorIs(t, err, ErrInvalidResponse)
}
