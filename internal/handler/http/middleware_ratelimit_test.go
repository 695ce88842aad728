package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewIPRateLimiter(t *testing.T) {
	assert.Nil(t, newIPRateLimiter(0, 5))
	assert.Nil(t, newIPRateLimiter(-1, 5))

	l := newIPRateLimiter(60, 0)
	require.NotNil(t, l)
	assert.Equal(t, 1, l.burst, "burst is at least one")
}

func TestIPRateLimiter_Reserve(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newIPRateLimiter(60, 2) // one token per second
	l.now = func() time.Time { return now }

	ok, _ := l.reserve("10.0.0.1")
	assert.True(t, ok)
	ok, _ = l.reserve("10.0.0.1")
	assert.True(t, ok)

	ok, retryAfter := l.reserve("10.0.0.1")
	assert.False(t, ok)
	assert.InDelta(t, time.Second, retryAfter, float64(10*time.Millisecond))

	// other clients have their own bucket
	ok, _ = l.reserve("10.0.0.2")
	assert.True(t, ok)

	now = now.Add(time.Second)
	ok, _ = l.reserve("10.0.0.1")
	assert.True(t, ok, "token refilled after a second")
}

func TestIPRateLimiter_SweepsIdleVisitors(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newIPRateLimiter(60, 1)
	l.now = func() time.Time { return now }

	l.reserve("10.0.0.1")
	l.reserve("10.0.0.2")
	assert.Len(t, l.visitors, 2)

	now = now.Add(visitorTTL + time.Second)
	l.reserve("10.0.0.3")

	assert.Len(t, l.visitors, 1)
	assert.Contains(t, l.visitors, "10.0.0.3")
}

func TestWithLoginRateLimit(t *testing.T) {
	h := NewHandler(&service.Services{}, nil, config.Server{LoginRatePerMinute: 1, LoginRateBurst: 1}, logger.Nop())

	calls := 0
	next := h.withLoginRateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
	}))

	do := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		next.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusCreated, do("192.0.2.1:1234").Code)

	rr := do("192.0.2.1:5678")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"too many requests"}`, rr.Body.String())

	assert.Equal(t, http.StatusCreated, do("192.0.2.2:1234").Code)
	assert.Equal(t, 2, calls)
}

func TestWithLoginRateLimit_Disabled(t *testing.T) {
	h := NewHandler(&service.Services{}, nil, config.Server{}, logger.Nop())
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	wrapped := h.withLoginRateLimit(next)

	for i := 0; i < 100; i++ {
		rr := httptest.NewRecorder()
		wrapped.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	req.RemoteAddr = "198.51.100.7:4431"
	assert.Equal(t, "198.51.100.7", clientIP(req))

	req.RemoteAddr = "198.51.100.7"
	assert.Equal(t, "198.51.100.7", clientIP(req))

	req.RemoteAddr = "[2001:db8::1]:80"
	assert.Equal(t, "2001:db8::1", clientIP(req))
}

// loginFrom posts credentials through the full router from remoteAddr with
// the given X-Forwarded-For value.
func loginFrom(router http.Handler, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"alice","password":"x"}`))
	req.RemoteAddr = remoteAddr
	req.Header.Set("X-Forwarded-For", forwardedFor)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr.Code
}

// TestLoginRateLimit_IgnoresForwardedHeadersByDefault verifies that rotating
// X-Forwarded-For from one socket does not yield fresh buckets.
func TestLoginRateLimit_IgnoresForwardedHeadersByDefault(t *testing.T) {
	h, m := newMockedHandlerWithConfig(t, config.Server{LoginRatePerMinute: 1, LoginRateBurst: 1})
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{}, service.ErrWrongCredentials).Times(1)
	router := h.Init()

	assert.Equal(t, http.StatusBadRequest, loginFrom(router, "10.0.0.1:4000", "203.0.113.1"))

	blocked := 0
	for i := 2; i <= 50; i++ {
		if loginFrom(router, "10.0.0.1:4000", fmt.Sprintf("203.0.113.%d", i)) == http.StatusTooManyRequests {
			blocked++
		}
	}
	assert.Equal(t, 49, blocked)
}

// TestLoginRateLimit_TrustedProxyKeysOnForwardedIP verifies that behind a
// trusted proxy every forwarded client gets its own bucket.
func TestLoginRateLimit_TrustedProxyKeysOnForwardedIP(t *testing.T) {
	h, m := newMockedHandlerWithConfig(t, config.Server{LoginRatePerMinute: 1, LoginRateBurst: 1, TrustProxyHeaders: true})
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{}, service.ErrWrongCredentials).Times(2)
	router := h.Init()

	assert.Equal(t, http.StatusBadRequest, loginFrom(router, "10.0.0.1:4000", "203.0.113.1"))
	assert.Equal(t, http.StatusBadRequest, loginFrom(router, "10.0.0.1:4000", "203.0.113.2"))
	assert.Equal(t, http.StatusTooManyRequests, loginFrom(router, "10.0.0.1:4000", "203.0.113.1"))
}
