package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// errorStatusMap keys must not wrap one another: the first match wins and map
// order is random.
var errorStatusMap = map[error]int{
	ErrInvalidJSON:         http.StatusBadRequest,
	ErrRequestBodyTooLarge: http.StatusRequestEntityTooLarge,
	ErrNoClaimsInContext:   http.StatusInternalServerError,
	ErrTooManyRequests:     http.StatusTooManyRequests,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidUUID:         http.StatusBadRequest,
	service.ErrMissingCredentials:  http.StatusBadRequest,
	service.ErrWrongCredentials:    http.StatusBadRequest,
	service.ErrInvalidToken:        http.StatusBadRequest,
	service.ErrTokenExpired:        http.StatusUnauthorized,
	service.ErrTokenCreation:       http.StatusInternalServerError,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrDatabaseUnavailable:   http.StatusServiceUnavailable,
}

// statusFromError returns the status for err and the public message, which is
// the text of the matched sentinel. Unknown errors become a bare 500.
func statusFromError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			if status == http.StatusInternalServerError {
				return status, http.StatusText(status)
			}
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and writes the mapped {"error": ...} body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Message: message}, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
