package memory

import (
	"context"
	"fmt"

	"game-manager/internal/gamemanager"
	"game-manager/internal/gamemanager/repository"
)

func (r *implRepository) RecordExecution(ctx context.Context, exec gamemanager.Execution) error {
	cache, ok := r.history[exec.Kind]
	if !ok {
		return fmt.Errorf("%w: %w %q", repository.ErrFailedToInsert, repository.ErrUnknownKind, exec.Kind)
	}
	if exec.RunID == "" {
		return fmt.Errorf("%w: run id is empty", repository.ErrFailedToInsert)
	}

	if evicted := cache.Add(exec.RunID, exec); evicted {
		r.l.Debugf(ctx, "memory.RecordExecution: %s history full, oldest run evicted", exec.Kind)
	}
	return nil
}

// ListExecutions returns up to opt.Limit executions newest first, and the
// number currently held for the kind.
func (r *implRepository) ListExecutions(ctx context.Context, opt repository.ListExecutionsOptions) ([]gamemanager.Execution, int, error) {
	cache, ok := r.history[opt.Kind]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %w %q", repository.ErrFailedToList, repository.ErrUnknownKind, opt.Kind)
	}

	// Values are oldest to newest with expired entries filtered out.
	values := cache.Values()
	total := len(values)

	limit := opt.Limit
	if limit <= 0 || limit > total {
		limit = total
	}

	out := make([]gamemanager.Execution, 0, limit)
	for i := total - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, values[i])
	}
	return out, total, nil
}
