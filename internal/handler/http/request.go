package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// maxRequestBodyBytes caps JSON bodies. Credentials are far smaller.
const maxRequestBodyBytes = 16 << 10

// decodeJSONBody decodes at most maxRequestBodyBytes of r.Body into dst.
// It returns ErrRequestBodyTooLarge or a wrapped ErrInvalidJSON.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("%w: limit %d bytes", ErrRequestBodyTooLarge, maxBytesErr.Limit)
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return nil
}
