package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "missing credentials", err: service.ErrMissingCredentials, wantStatus: http.StatusBadRequest, wantMessage: "missing credentials"},
		{name: "wrong credentials", err: service.ErrWrongCredentials, wantStatus: http.StatusBadRequest, wantMessage: "wrong credentials"},
		{name: "invalid token", err: fmt.Errorf("%w: bad sig", service.ErrInvalidToken), wantStatus: http.StatusBadRequest, wantMessage: "invalid token"},
		{name: "expired token", err: service.ErrTokenExpired, wantStatus: http.StatusUnauthorized, wantMessage: "token is expired"},
		{name: "token creation hides details", err: fmt.Errorf("%w: key", service.ErrTokenCreation), wantStatus: http.StatusInternalServerError, wantMessage: "Internal Server Error"},
		{name: "invalid json", err: ErrInvalidJSON, wantStatus: http.StatusBadRequest, wantMessage: "invalid JSON was passed"},
		{name: "rate limited", err: ErrTooManyRequests, wantStatus: http.StatusTooManyRequests, wantMessage: "too many requests"},
		{name: "user not found", err: fmt.Errorf("lookup: %w", store.ErrUserNotFound), wantStatus: http.StatusNotFound, wantMessage: store.ErrUserNotFound.Error()},
		{name: "database down", err: fmt.Errorf("%w: dial tcp", store.ErrDatabaseUnavailable), wantStatus: http.StatusServiceUnavailable, wantMessage: store.ErrDatabaseUnavailable.Error()},
		{name: "malformed hash is a server fault", err: crypto.ErrMalformedHash, wantStatus: http.StatusInternalServerError, wantMessage: "Internal Server Error"},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMessage: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(rr, req, service.ErrTokenExpired)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"token is expired"}`, rr.Body.String())
}
