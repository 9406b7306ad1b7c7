package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-api/internal/app"
	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/service"
	"github.com/MKhiriev/go-auth-api/internal/utils"
	"github.com/MKhiriev/go-auth-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	user, token, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully registered")

	utils.WriteJSON(w, models.RegisterResponse{
		Success: true,
		Message: app.MsgUserRegistered,
		Data: models.RegisterData{
			User:  user,
			Token: token,
		},
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Message: app.MsgSuccess,
		Token:   token,
	}, http.StatusCreated)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	if err := h.services.AuthService.Logout(ctx, userID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgTokenRemoved}, http.StatusOK)
}
