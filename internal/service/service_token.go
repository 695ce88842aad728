// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService is the concrete implementation of TokenService.
// It signs HS256 tokens whose subject is the public user UUID and checks
// them on every guarded request.
type tokenService struct {
	// signKey is the HMAC secret used to sign and verify tokens.
	signKey string

	// issuer is the "iss" claim of every issued token. Tokens carrying
	// another issuer are rejected.
	issuer string

	// company is the "company" claim of every issued token.
	company string

	// duration is the validity window counted from "iat".
	duration time.Duration

	// now is the clock. Replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the application config.
// The sign key and token parameters are copied once; the service is safe
// for concurrent use.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	company := cfg.TokenCompany
	if company == "" {
		company = cfg.TokenIssuer
	}

	return &tokenService{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		company:  company,
		duration: cfg.TokenDuration,
		now:      time.Now,
		logger:   logger,
	}
}

// IssueToken signs a token for user. iat is the current time and exp is
// iat plus the configured duration.
//
// Returns ErrTokenCreation when the user has no UUID or signing fails.
func (s *tokenService) IssueToken(ctx context.Context, user models.User) (models.AuthBody, error) {
	log := logger.FromContext(ctx)

	if user.UUID == "" {
		log.Error().Str("func", "*tokenService.IssueToken").Msg("user has no uuid")
		return models.AuthBody{}, fmt.Errorf("%w: empty subject", ErrTokenCreation)
	}

	issuedAt := s.now()
	claims := models.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UUID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.duration)),
		},
		Company: s.company,
	}

	token, err := utils.SignJWTToken(claims, s.signKey)
	if err != nil {
		log.Err(err).Str("func", "*tokenService.IssueToken").Msg("error signing token")
		return models.AuthBody{}, fmt.Errorf("%w: %w", ErrTokenCreation, err)
	}

	return models.AuthBody{
		AccessToken: token,
		TokenType:   models.TokenTypeBearer,
	}, nil
}

// ValidateToken verifies the signature of tokenString and checks its claims.
//
// Returns:
//   - ErrInvalidToken if the token is malformed, tampered with, signed with
//     another key or algorithm, has a foreign issuer, no subject, no iat or an
//     iat in the future.
//   - ErrTokenExpired if now is at or past iat + duration, or past exp when
//     exp is earlier.
func (s *tokenService) ValidateToken(ctx context.Context, tokenString string) (*models.AuthClaims, error) {
	log := logger.FromContext(ctx)

	claims, err := utils.ParseJWTToken(tokenString, s.signKey)
	if err != nil {
		log.Debug().Err(err).Str("func", "*tokenService.ValidateToken").Msg("token rejected")
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Issuer != s.issuer {
		log.Debug().Str("func", "*tokenService.ValidateToken").Str("iss", claims.Issuer).Msg("foreign issuer")
		return nil, fmt.Errorf("%w: unexpected issuer", ErrInvalidToken)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}
	if claims.IssuedAt == nil {
		return nil, fmt.Errorf("%w: missing iat", ErrInvalidToken)
	}

	now := s.now()
	issuedAt := claims.IssuedAt.Time
	if issuedAt.After(now) {
		return nil, fmt.Errorf("%w: issued in the future", ErrInvalidToken)
	}

	expiresAt := issuedAt.Add(s.duration)
	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(expiresAt) {
		expiresAt = claims.ExpiresAt.Time
	}
	if !now.Before(expiresAt) {
		log.Debug().Str("func", "*tokenService.ValidateToken").Str("sub", claims.Subject).Msg("token expired")
		return nil, ErrTokenExpired
	}

	return claims, nil
}
