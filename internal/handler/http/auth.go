package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkovalev/running-log/internal/identity"
	"github.com/dkovalev/running-log/internal/logger"
	"github.com/dkovalev/running-log/internal/utils"
	"github.com/dkovalev/running-log/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, token, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrValidation):
			log.Err(err).Msg("invalid registration data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, identity.ErrEmailAlreadyRegistered):
			log.Err(err).Msg("email already registered")
			http.Error(w, identity.ErrEmailAlreadyRegistered.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, identity.ErrRegistrationRejected):
			log.Err(err).Msg("identity provider rejected registration")
			http.Error(w, identity.ErrRegistrationRejected.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("user_id", user.UserID).Msg("user successfully registered")

	utils.WriteJSON(w, models.AuthResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
		UserID:      user.UserID,
		Email:       user.Email,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidCredentials):
			log.Err(err).Msg("invalid email or password")
			http.Error(w, identity.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("user_id", user.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
		UserID:      user.UserID,
		Email:       user.Email,
	}, http.StatusOK)
}
