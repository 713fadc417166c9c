package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fideslex/booking-service/pkg/logger"
)

func TestRateLimiter_PerIP(t *testing.T) {
	limiter := NewRateLimiter(1, 2, logger.NewNop())
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/appointment-requests", nil)
		req.RemoteAddr = ip + ":5000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusCreated, call("10.0.0.1"))
	assert.Equal(t, http.StatusCreated, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
	assert.Equal(t, http.StatusCreated, call("10.0.0.2"))

	// Через минуту токен восстанавливается
	now = now.Add(time.Minute)
	assert.Equal(t, http.StatusCreated, call("10.0.0.1"))
}

func TestRateLimiter_IgnoresSpoofedForwardingHeaders(t *testing.T) {
	limiter := NewRateLimiter(1, 1, logger.NewNop())
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	accepted := 0
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/appointment-requests", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("203.0.113.%d", i))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code == http.StatusCreated {
			accepted++
		}
	}

	assert.Equal(t, 1, accepted)
	assert.Len(t, limiter.visitors, 1)
}

func TestClientIP_UntrustedPeer(t *testing.T) {
	limiter := NewRateLimiter(5, 5, logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	req.Header.Set("X-Real-IP", "203.0.113.8")

	assert.Equal(t, "192.0.2.1", limiter.clientIP(req))
}

func TestClientIP_TrustedProxy(t *testing.T) {
	nets, err := ParseTrustedProxies([]string{"10.0.0.0/8", "192.0.2.10"})
	require.NoError(t, err)
	limiter := NewRateLimiter(5, 5, logger.NewNop()).WithTrustedProxies(nets)

	tests := []struct {
		name   string
		remote string
		xff    string
		realIP string
		want   string
	}{
		{name: "last untrusted hop", remote: "10.1.1.1:80", xff: "1.2.3.4, 203.0.113.7, 10.2.2.2", want: "203.0.113.7"},
		{name: "single address proxy", remote: "192.0.2.10:80", xff: "203.0.113.9", want: "203.0.113.9"},
		{name: "real ip fallback", remote: "10.1.1.1:80", realIP: "203.0.113.5", want: "203.0.113.5"},
		{name: "garbage header", remote: "10.1.1.1:80", xff: "not-an-ip", want: "10.1.1.1"},
		{name: "other peer", remote: "192.0.2.11:80", xff: "203.0.113.7", want: "192.0.2.11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			assert.Equal(t, tt.want, limiter.clientIP(req))
		})
	}
}

func TestParseTrustedProxies_Invalid(t *testing.T) {
	_, err := ParseTrustedProxies([]string{"10.0.0.0/33"})
	assert.Error(t, err)

	_, err = ParseTrustedProxies([]string{"proxy.local"})
	assert.Error(t, err)
}

func TestRateLimiter_SweepsIdleVisitors(t *testing.T) {
	limiter := NewRateLimiter(5, 5, logger.NewNop())
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.allow("192.0.2.1")
	now = now.Add(5 * time.Minute)
	limiter.allow("192.0.2.2")
	assert.Len(t, limiter.visitors, 2)

	now = now.Add(6 * time.Minute)
	limiter.allow("192.0.2.3")

	assert.NotContains(t, limiter.visitors, "192.0.2.1")
	assert.Contains(t, limiter.visitors, "192.0.2.2")
	assert.Len(t, limiter.visitors, 2)
}
