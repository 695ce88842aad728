package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/validators"
)

type Services struct {
	UserService  UserService
	AuthService  AuthService
	TokenService TokenService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	validator := validators.NewUserValidator()
	tokenService := NewTokenService(cfg, logger)

	return &Services{
		UserService:  NewUserService(storages.UserRepository, hasher, validator, logger),
		AuthService:  NewAuthService(storages.UserRepository, hasher, validator, tokenService, logger),
		TokenService: tokenService,
	}, nil
}
