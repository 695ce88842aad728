// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token signing
// and parsing, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which the auth middleware stores the decoded
// token claims of the current request.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ClaimsCtxKey, &claims)
var ClaimsCtxKey = contextKey("authClaims")

// GetClaimsFromContext retrieves the decoded token claims from the context.
//
// Returns the claims and an ok flag:
//   - ok == true  — value is found and has the correct *models.AuthClaims type
//   - ok == false — value is missing, nil or has an unexpected type
//
// Example usage:
//
//	claims, ok := utils.GetClaimsFromContext(ctx)
//	if !ok {
//	    // handle unauthenticated request
//	}
func GetClaimsFromContext(ctx context.Context) (*models.AuthClaims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(*models.AuthClaims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}
