package http

import (
	"context"
	"testing"

	"github.com/dkovalev/running-log/internal/logger"
	"github.com/dkovalev/running-log/internal/service"
	"github.com/dkovalev/running-log/models"
)

// Mock services with per-test overridable method fields.

type mockAuthService struct {
	registerFn   func(ctx context.Context, request models.RegisterRequest) (models.User, models.Token, error)
	loginFn      func(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.User, models.Token, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockRunService struct {
	createRunFn func(ctx context.Context, userID string, request models.RunRequest) (models.Run, error)
	listRunsFn  func(ctx context.Context, userID string) ([]models.Run, error)
}

func (m *mockRunService) CreateRun(ctx context.Context, userID string, request models.RunRequest) (models.Run, error) {
	return m.createRunFn(ctx, userID, request)
}

func (m *mockRunService) ListRuns(ctx context.Context, userID string) ([]models.Run, error) {
	return m.listRunsFn(ctx, userID)
}

type mockTargetService struct {
	createTargetFn func(ctx context.Context, userID string, request models.TargetRequest) (models.Target, error)
	listTargetsFn  func(ctx context.Context, userID string) ([]models.Target, error)
}

func (m *mockTargetService) CreateTarget(ctx context.Context, userID string, request models.TargetRequest) (models.Target, error) {
	return m.createTargetFn(ctx, userID, request)
}

func (m *mockTargetService) ListTargets(ctx context.Context, userID string) ([]models.Target, error) {
	return m.listTargetsFn(ctx, userID)
}

// newTestHandler builds a Handler over the given mocks; nil mocks are left
// out of the service set and must not be reached by the test.
func newTestHandler(t *testing.T, auth service.AuthService, runs service.RunService, targets service.TargetService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{
		AuthService:   auth,
		RunService:    runs,
		TargetService: targets,
	}, logger.Nop())
}
