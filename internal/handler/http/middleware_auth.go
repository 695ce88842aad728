package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.TokenService.ValidateToken] and, on success, stores the decoded
// claims in the request context under [utils.ClaimsCtxKey] before delegating
// to the next handler.
//
// The request is rejected and the next handler never runs when:
//   - the header is absent, uses another scheme or has no token
//     (400, [service.ErrInvalidToken]);
//   - the token is malformed, tampered with or foreign (400, [service.ErrInvalidToken]);
//   - the token has expired (401, [service.ErrTokenExpired]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidToken, ErrEmptyAuthorizationHeader))
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidToken, err))
			return
		}

		ctx := r.Context()
		claims, err := h.services.TokenService.ValidateToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.ClaimsCtxKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
