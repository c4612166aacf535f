package service

import (
	"context"

	"github.com/dkovalev/running-log/internal/identity"
	"github.com/dkovalev/running-log/models"
)

// Hand-rolled fakes with overridable method fields, one per collaborator.
// Unset fields return zero values.

type fakeUserRepository struct {
	saveUserFn       func(ctx context.Context, user models.User) error
	getUserByIDFn    func(ctx context.Context, userID string) (models.User, error)
	getUserByEmailFn func(ctx context.Context, email string) (models.User, error)
}

func (f *fakeUserRepository) SaveUser(ctx context.Context, user models.User) error {
	if f.saveUserFn == nil {
		return nil
	}
	return f.saveUserFn(ctx, user)
}

func (f *fakeUserRepository) GetUserByID(ctx context.Context, userID string) (models.User, error) {
	if f.getUserByIDFn == nil {
		return models.User{}, nil
	}
	return f.getUserByIDFn(ctx, userID)
}

func (f *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	if f.getUserByEmailFn == nil {
		return models.User{}, nil
	}
	return f.getUserByEmailFn(ctx, email)
}

type fakeRunRepository struct {
	saveRunFn       func(ctx context.Context, run models.Run) error
	getRunByIDFn    func(ctx context.Context, userID string, runID string) (models.Run, error)
	getRunsByUserFn func(ctx context.Context, userID string) ([]models.Run, error)
	updateRunFn     func(ctx context.Context, run models.Run) error
	deleteRunFn     func(ctx context.Context, userID string, runID string) error
}

func (f *fakeRunRepository) SaveRun(ctx context.Context, run models.Run) error {
	if f.saveRunFn == nil {
		return nil
	}
	return f.saveRunFn(ctx, run)
}

func (f *fakeRunRepository) GetRunByID(ctx context.Context, userID string, runID string) (models.Run, error) {
	if f.getRunByIDFn == nil {
		return models.Run{}, nil
	}
	return f.getRunByIDFn(ctx, userID, runID)
}

func (f *fakeRunRepository) GetRunsByUser(ctx context.Context, userID string) ([]models.Run, error) {
	if f.getRunsByUserFn == nil {
		return nil, nil
	}
	return f.getRunsByUserFn(ctx, userID)
}

func (f *fakeRunRepository) UpdateRun(ctx context.Context, run models.Run) error {
	if f.updateRunFn == nil {
		return nil
	}
	return f.updateRunFn(ctx, run)
}

func (f *fakeRunRepository) DeleteRun(ctx context.Context, userID string, runID string) error {
	if f.deleteRunFn == nil {
		return nil
	}
	return f.deleteRunFn(ctx, userID, runID)
}

type fakeTargetRepository struct {
	saveTargetFn       func(ctx context.Context, target models.Target) error
	getTargetsByUserFn func(ctx context.Context, userID string) ([]models.Target, error)
}

func (f *fakeTargetRepository) SaveTarget(ctx context.Context, target models.Target) error {
	if f.saveTargetFn == nil {
		return nil
	}
	return f.saveTargetFn(ctx, target)
}

func (f *fakeTargetRepository) GetTargetsByUser(ctx context.Context, userID string) ([]models.Target, error) {
	if f.getTargetsByUserFn == nil {
		return nil, nil
	}
	return f.getTargetsByUserFn(ctx, userID)
}

type fakeProvider struct {
	registerFn     func(ctx context.Context, email string, password string, firstName string, lastName string) (identity.Identity, error)
	authenticateFn func(ctx context.Context, email string, password string) (identity.Identity, error)
}

func (f *fakeProvider) Register(ctx context.Context, email string, password string, firstName string, lastName string) (identity.Identity, error) {
	if f.registerFn == nil {
		return identity.Identity{UserID: "fake-user-id", Email: email}, nil
	}
	return f.registerFn(ctx, email, password, firstName, lastName)
}

func (f *fakeProvider) Authenticate(ctx context.Context, email string, password string) (identity.Identity, error) {
	if f.authenticateFn == nil {
		return identity.Identity{UserID: "fake-user-id", Email: email}, nil
	}
	return f.authenticateFn(ctx, email, password)
}
