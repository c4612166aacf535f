package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkovalev/running-log/internal/logger"
	"github.com/dkovalev/running-log/internal/utils"
	"github.com/dkovalev/running-log/models"
)

func (h *Handler) createTarget(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, ErrInvalidAuthorizationToken.Error(), http.StatusUnauthorized)
		return
	}

	var request models.TargetRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	target, err := h.services.TargetService.CreateTarget(ctx, userID, request)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrValidation):
			log.Err(err).Msg("invalid target data provided")
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during target creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("target_id", target.TargetID).Msg("target successfully set")

	utils.WriteJSON(w, target.ToResponse(), http.StatusCreated)
}

func (h *Handler) listTargets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, ErrInvalidAuthorizationToken.Error(), http.StatusUnauthorized)
		return
	}

	targets, err := h.services.TargetService.ListTargets(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during target listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// Always an array, never null.
	responses := make([]models.TargetResponse, 0, len(targets))
	for _, target := range targets {
		responses = append(responses, target.ToResponse())
	}

	utils.WriteJSON(w, responses, http.StatusOK)
}
