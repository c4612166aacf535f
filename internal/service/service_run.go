package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dkovalev/running-log/internal/logger"
	"github.com/dkovalev/running-log/internal/store"
	"github.com/dkovalev/running-log/models"
)

// dateLayout is the wire format for run dates.
const dateLayout = "2006-01-02"

// runService is the concrete implementation of RunService.
type runService struct {
	runRepository store.RunRepository
	logger        *logger.Logger
}

// NewRunService constructs a RunService over the given repository.
func NewRunService(runRepository store.RunRepository, logger *logger.Logger) RunService {
	return &runService{
		runRepository: runRepository,
		logger:        logger,
	}
}

// CreateRun validates the request, builds the run, and persists it under
// the caller's partition.
//
// Returns an [models.ErrValidation] error for a malformed date, a
// non-positive distance, or a malformed duration; a wrapped storage error
// otherwise.
func (s *runService) CreateRun(ctx context.Context, userID string, request models.RunRequest) (models.Run, error) {
	log := logger.FromContext(ctx)

	date, err := time.Parse(dateLayout, request.Date)
	if err != nil {
		return models.Run{}, fmt.Errorf("%w: invalid date format: must be YYYY-MM-DD", models.ErrValidation)
	}

	run, err := models.NewRun(userID, date, request.DistanceKm, request.Duration, request.Notes)
	if err != nil {
		return models.Run{}, err
	}

	if err := s.runRepository.SaveRun(ctx, run); err != nil {
		log.Err(err).Str("user_id", userID).Msg("run creation ended with error")
		return models.Run{}, fmt.Errorf("run creation ended with error: %w", err)
	}

	return run, nil
}

// ListRuns returns all runs recorded by the user, in store order.
func (s *runService) ListRuns(ctx context.Context, userID string) ([]models.Run, error) {
	log := logger.FromContext(ctx)

	runs, err := s.runRepository.GetRunsByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("run listing ended with error")
		return nil, fmt.Errorf("run listing ended with error: %w", err)
	}

	return runs, nil
}
