// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the go-auth-keeper HTTP API.
//
// [ServerAdapter] hides the transport from the command-line client. The HTTP
// implementation ([NewHTTPServerAdapter]) is built on resty.
//
// Non-2xx responses are mapped to the sentinel errors of errors.go by
// mapHTTPError, so callers can use [errors.Is] (e.g. [ErrUnauthorized] for an
// expired token, [ErrTooManyRequests] for a rate-limited login).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the go-auth-keeper server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to guarded requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before a login.
	Token() string

	// Register creates an account via POST /users/create.
	Register(ctx context.Context, req models.CreateUserRequest) (models.PublicUser, error)

	// Login exchanges credentials for a token via POST /auth/login and stores
	// the token on success.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// Protected calls POST /auth/protected and returns its text body.
	Protected(ctx context.Context) (string, error)

	// Me returns the profile of the logged-in user via GET /users/me.
	Me(ctx context.Context) (models.PublicUser, error)

	// Health reports whether GET /healthz answers 200.
	Health(ctx context.Context) error
}
