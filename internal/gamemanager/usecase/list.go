package usecase

import (
	"context"
	"fmt"

	"game-manager/internal/gamemanager"
	repo "game-manager/internal/gamemanager/repository"
)

// ListExecutions returns the recent executions of one manager, newest first.
func (uc *implUseCase) ListExecutions(ctx context.Context, input gamemanager.ListExecutionsInput) (gamemanager.ListExecutionsOutput, error) {
	if !input.Kind.Valid() {
		return gamemanager.ListExecutionsOutput{}, fmt.Errorf("%w: %q", gamemanager.ErrUnknownKind, input.Kind)
	}

	execs, total, err := uc.repo.ListExecutions(ctx, repo.ListExecutionsOptions{
		Kind:  input.Kind,
		Limit: uc.clampLimit(input.Limit),
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: repo.ListExecutions: %v", LogPrefixList, err)
		return gamemanager.ListExecutionsOutput{}, fmt.Errorf("%w: %w", gamemanager.ErrHistoryUnavailable, err)
	}

	return gamemanager.ListExecutionsOutput{
		Executions: execs,
		Total:      total,
	}, nil
}
