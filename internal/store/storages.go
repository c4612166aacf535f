package store

import (
	"github.com/dkovalev/running-log/internal/config"
	"github.com/dkovalev/running-log/internal/logger"
)

// Storages bundles all repositories behind their interfaces so the service
// layer receives a single dependency.
type Storages struct {
	RunRepository    RunRepository
	TargetRepository TargetRepository
	UserRepository   UserRepository
}

// NewStorages wires every repository to the shared DynamoDB client and the
// configured table names.
func NewStorages(client DynamoAPI, cfg config.Storage, logger *logger.Logger) *Storages {
	return &Storages{
		RunRepository:    NewRunRepository(client, cfg.RunsTable, logger),
		TargetRepository: NewTargetRepository(client, cfg.TargetsTable, logger),
		UserRepository:   NewUserRepository(client, cfg.UsersTable, cfg.UsersEmailIndex, logger),
	}
}
