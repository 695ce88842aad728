package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrEmptySignKey is returned when a token is signed or parsed without a key.
	ErrEmptySignKey = errors.New("empty JWT sign key")
	// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
	// header is absent, uses another scheme or carries no token.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)

// SignJWTToken signs claims with HMAC-SHA256 and returns the compact token
// string. Claims are signed as given; callers fill iat/exp themselves.
//
// Example usage:
//
//	token, err := utils.SignJWTToken(claims, "secret")
func SignJWTToken(claims models.AuthClaims, signKey string) (string, error) {
	if signKey == "" {
		return "", ErrEmptySignKey
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// ParseJWTToken verifies the signature of tokenString with signKey and
// decodes its claims.
//
// Only HS256 is accepted. Time-based claims are NOT validated here: the
// caller decides how iat, exp and the configured lifetime combine into an
// expiry boundary.
//
// Example usage:
//
//	claims, err := utils.ParseJWTToken(rawToken, "secret")
//	if err != nil {
//	    // handle malformed or tampered token
//	}
func ParseJWTToken(tokenString, signKey string) (*models.AuthClaims, error) {
	if signKey == "" {
		return nil, ErrEmptySignKey
	}

	claims := &models.AuthClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], models.TokenTypeBearer) {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
