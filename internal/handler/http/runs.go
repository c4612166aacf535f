package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkovalev/running-log/internal/logger"
	"github.com/dkovalev/running-log/internal/utils"
	"github.com/dkovalev/running-log/models"
)

func (h *Handler) createRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, ErrInvalidAuthorizationToken.Error(), http.StatusUnauthorized)
		return
	}

	var request models.RunRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	run, err := h.services.RunService.CreateRun(ctx, userID, request)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrValidation):
			log.Err(err).Msg("invalid run data provided")
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during run creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("run_id", run.RunID).Msg("run successfully recorded")

	utils.WriteJSON(w, run.ToResponse(), http.StatusCreated)
}

func (h *Handler) listRuns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, ErrInvalidAuthorizationToken.Error(), http.StatusUnauthorized)
		return
	}

	runs, err := h.services.RunService.ListRuns(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during run listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// Always an array, never null.
	responses := make([]models.RunResponse, 0, len(runs))
	for _, run := range runs {
		responses = append(responses, run.ToResponse())
	}

	utils.WriteJSON(w, responses, http.StatusOK)
}
