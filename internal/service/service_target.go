package service

import (
	"context"
	"fmt"

	"github.com/dkovalev/running-log/internal/logger"
	"github.com/dkovalev/running-log/internal/store"
	"github.com/dkovalev/running-log/models"
)

// targetService is the concrete implementation of TargetService.
type targetService struct {
	targetRepository store.TargetRepository
	logger           *logger.Logger
}

// NewTargetService constructs a TargetService over the given repository.
func NewTargetService(targetRepository store.TargetRepository, logger *logger.Logger) TargetService {
	return &targetService{
		targetRepository: targetRepository,
		logger:           logger,
	}
}

// CreateTarget validates the request and persists the target. Setting a
// target for a (type, period) pair the user already has replaces the old
// one, so at most one target exists per pair.
//
// Returns an [models.ErrValidation] error for a bad type, period, or
// distance; a wrapped storage error otherwise.
func (s *targetService) CreateTarget(ctx context.Context, userID string, request models.TargetRequest) (models.Target, error) {
	log := logger.FromContext(ctx)

	target, err := models.NewTarget(userID, request.TargetType, request.Period, request.DistanceKm)
	if err != nil {
		return models.Target{}, err
	}

	if err := s.targetRepository.SaveTarget(ctx, target); err != nil {
		log.Err(err).Str("user_id", userID).Msg("target creation ended with error")
		return models.Target{}, fmt.Errorf("target creation ended with error: %w", err)
	}

	return target, nil
}

// ListTargets returns all targets set by the user.
func (s *targetService) ListTargets(ctx context.Context, userID string) ([]models.Target, error) {
	log := logger.FromContext(ctx)

	targets, err := s.targetRepository.GetTargetsByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("target listing ended with error")
		return nil, fmt.Errorf("target listing ended with error: %w", err)
	}

	return targets, nil
}
