package handler

import (
	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/handler/http"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
)

// Handlers groups the transport handlers served by the process.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the HTTP handler when an HTTP address is configured.
// It fails with errNoHandlersAreCreated otherwise.
func NewHandlers(services *service.Services, healthChecker store.HealthChecker, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, healthChecker, cfg, logger),
	}, nil
}
