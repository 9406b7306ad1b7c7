package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-api/internal/service"
	"github.com/MKhiriev/go-auth-api/internal/utils"
)

// me returns the user resolved by the auth middleware.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
