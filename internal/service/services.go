package service

import (
	"github.com/dkovalev/running-log/internal/config"
	"github.com/dkovalev/running-log/internal/identity"
	"github.com/dkovalev/running-log/internal/logger"
	"github.com/dkovalev/running-log/internal/store"
)

type Services struct {
	AuthService   AuthService
	RunService    RunService
	TargetService TargetService
}

func NewServices(storages store.Storages, provider identity.Provider, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, provider, cfg.App, logger),
		RunService:    NewRunService(storages.RunRepository, logger),
		TargetService: NewTargetService(storages.TargetRepository, logger),
	}
}
