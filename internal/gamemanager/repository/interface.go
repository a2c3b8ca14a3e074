package repository

import (
	"context"

	"game-manager/internal/gamemanager"
)

// Repository is the composed interface for the game manager data store.
type Repository interface {
	ExecutionRepository
}

// ExecutionRepository keeps a bounded history of executed tasks.
type ExecutionRepository interface {
	RecordExecution(ctx context.Context, exec gamemanager.Execution) error
	ListExecutions(ctx context.Context, opt ListExecutionsOptions) ([]gamemanager.Execution, int, error)
}
