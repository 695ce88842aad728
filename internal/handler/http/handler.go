package http

import (
	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
)

type Handler struct {
	services      *service.Services
	healthChecker store.HealthChecker
	loginLimiter  *ipRateLimiter
	cfg           config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, healthChecker store.HealthChecker, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		healthChecker: healthChecker,
		loginLimiter:  newIPRateLimiter(cfg.LoginRatePerMinute, cfg.LoginRateBurst),
		cfg:           cfg,
		logger:        logger,
	}
}
