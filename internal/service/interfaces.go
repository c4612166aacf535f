package service

import (
	"context"

	"github.com/dkovalev/running-log/models"
)

type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, models.Token, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type RunService interface {
	CreateRun(ctx context.Context, userID string, request models.RunRequest) (models.Run, error)
	ListRuns(ctx context.Context, userID string) ([]models.Run, error)
}

type TargetService interface {
	CreateTarget(ctx context.Context, userID string, request models.TargetRequest) (models.Target, error)
	ListTargets(ctx context.Context, userID string) ([]models.Target, error)
}
