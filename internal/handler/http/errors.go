// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Their text is what clients see in
// the "error" field of the response body.
var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrRequestBodyTooLarge is returned when a body exceeds maxRequestBodyBytes.
	ErrRequestBodyTooLarge = errors.New("request body too large")

	// ErrEmptyAuthorizationHeader is logged by the auth middleware when the
	// request carries no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoClaimsInContext means a guarded handler ran without the auth
	// middleware in front of it.
	ErrNoClaimsInContext = errors.New("no auth claims in request context")

	// ErrTooManyRequests is written when the login limiter rejects a client.
	ErrTooManyRequests = errors.New("too many requests")

	// ErrMethodNotAllowed is written for a known path with an unregistered method.
	ErrMethodNotAllowed = errors.New("method not allowed")
)
