package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/mock"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type handlerMocks struct {
	users  *mock.MockUserService
	auth   *mock.MockAuthService
	tokens *mock.MockTokenService
	health *mock.MockHealthChecker
}

// newMockedHandler builds a Handler on gomock services with the login
// limiter disabled.
func newMockedHandler(t *testing.T) (*Handler, *handlerMocks) {
	t.Helper()
	return newMockedHandlerWithConfig(t, config.Server{})
}

func newMockedHandlerWithConfig(t *testing.T, cfg config.Server) (*Handler, *handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &handlerMocks{
		users:  mock.NewMockUserService(ctrl),
		auth:   mock.NewMockAuthService(ctrl),
		tokens: mock.NewMockTokenService(ctrl),
		health: mock.NewMockHealthChecker(ctrl),
	}
	services := &service.Services{
		UserService:  m.users,
		AuthService:  m.auth,
		TokenService: m.tokens,
	}

	return NewHandler(services, m.health, cfg, logger.Nop()), m
}

func serve(h *Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Message
}

// ─────────────────────────────────────────────
// NewHandler / Init
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	services := &service.Services{}
	log := logger.Nop()
	cfg := config.Server{LoginRatePerMinute: 60, LoginRateBurst: 5}

	h := NewHandler(services, nil, cfg, log)

	require.NotNil(t, h)
	assert.Equal(t, services, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, cfg, h.cfg)
	require.NotNil(t, h.loginLimiter)
	assert.Equal(t, 5, h.loginLimiter.burst)
}

func TestNewHandler_LimiterDisabled(t *testing.T) {
	h := NewHandler(&service.Services{}, nil, config.Server{LoginRatePerMinute: 0}, logger.Nop())
	assert.Nil(t, h.loginLimiter)
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, _ := newMockedHandler(t)
	router := h.Init()

	want := map[string]string{
		"/users/create":   http.MethodPost,
		"/auth/login":     http.MethodPost,
		"/auth/protected": http.MethodPost,
		"/users/me":       http.MethodGet,
		"/healthz":        http.MethodGet,
	}

	got := make(map[string]string)
	for _, route := range router.Routes() {
		for method := range route.Handlers {
			got[route.Pattern] = method
		}
	}

	assert.Equal(t, want, got)
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newMockedHandler(t)

	rr := serve(h, http.MethodGet, "/does-not-exist", "", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_WrongMethodReturns405(t *testing.T) {
	h, _ := newMockedHandler(t)

	rr := serve(h, http.MethodGet, "/auth/login", "", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, http.MethodPost, rr.Header().Get("Allow"))
	assert.Equal(t, ErrMethodNotAllowed.Error(), decodeError(t, rr))
}

func TestInit_TraceIDOnEveryResponse(t *testing.T) {
	h, _ := newMockedHandler(t)

	rr := serve(h, http.MethodPost, "/auth/protected", "", nil)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))

	rr = serve(h, http.MethodGet, "/nowhere", "", map[string]string{traceIDHeader: "abc"})
	assert.Equal(t, "abc", rr.Header().Get(traceIDHeader))
}
