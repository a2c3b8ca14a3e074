package memory

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"game-manager/internal/gamemanager"
	"game-manager/internal/gamemanager/repository"
	"game-manager/pkg/log"
)

// Options sizes the per-kind history.
type Options struct {
	Size int           // max executions kept per kind; <= 0 means unbounded
	TTL  time.Duration // how long an execution is kept; <= 0 means forever
}

type implRepository struct {
	l       log.Logger
	history map[gamemanager.Kind]*expirable.LRU[string, gamemanager.Execution]
}

var _ repository.Repository = (*implRepository)(nil)

// New creates an in-memory execution history backed by one expirable LRU per kind.
func New(l log.Logger, opt Options) *implRepository {
	history := make(map[gamemanager.Kind]*expirable.LRU[string, gamemanager.Execution], len(gamemanager.Kinds))
	for _, k := range gamemanager.Kinds {
		history[k] = expirable.NewLRU[string, gamemanager.Execution](opt.Size, nil, opt.TTL)
	}

	return &implRepository{
		l:       l,
		history: history,
	}
}
