package usecase

import (
	"time"

	"github.com/google/uuid"

	"game-manager/internal/gamemanager"
	"game-manager/internal/gamemanager/repository"
	"game-manager/pkg/log"
)

// implUseCase is the private implementation of gamemanager.UseCase.
type implUseCase struct {
	repo  repository.Repository
	l     log.Logger
	now   func() time.Time
	newID func() string
}

var _ gamemanager.UseCase = (*implUseCase)(nil)

// New creates a new game manager UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		l:     l,
		now:   time.Now,
		newID: uuid.NewString,
	}
}
