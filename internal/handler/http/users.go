package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// createUser registers a user. Every failure answers 400 with an empty user
// object so that clients always receive the same shape.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.PublicUser{}, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.CreateUser(ctx, req)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation failed")
		utils.WriteJSON(w, models.PublicUser{}, http.StatusBadRequest)
		return
	}

	log.Debug().Str("uuid", user.UUID).Msg("user successfully registered")
	utils.WriteJSON(w, user, http.StatusCreated)
}

// me returns the profile of the authenticated user.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoClaimsInContext)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), claims.Subject)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
