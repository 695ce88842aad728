package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := decodeJSONBody(w, r, &creds); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("uuid", resp.User.UUID).Msg("user successfully logged in")
	utils.WriteJSON(w, resp, http.StatusCreated)
}

// protected is the example guarded route.
func (h *Handler) protected(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoClaimsInContext)
		return
	}

	utils.WriteText(w, fmt.Sprintf("Welcome to the protected area, %s", claims.Subject), http.StatusOK)
}
