package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeBearer is the only token type issued by the server.
const TokenTypeBearer = "Bearer"

// AuthClaims is the payload carried by every access token.
//
// The standard claims used are:
//   - sub: public UUID of the authenticated user
//   - iss: issuer tag configured on the server
//   - iat: issue time, the start of the validity window
//   - exp: issue time plus the configured token duration
//
// Company duplicates the issuer tag by default and is kept for clients that
// read the "company" claim.
type AuthClaims struct {
	jwt.RegisteredClaims

	Company string `json:"company,omitempty"`
}

// AuthBody is the token part of a successful login response.
type AuthBody struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// LoginResponse is the body returned by POST /auth/login.
type LoginResponse struct {
	Auth AuthBody   `json:"auth"`
	User PublicUser `json:"user"`
}
