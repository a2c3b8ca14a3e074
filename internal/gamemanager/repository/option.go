package repository

import "game-manager/internal/gamemanager"

// ListExecutionsOptions selects executions of one kind, newest first.
type ListExecutionsOptions struct {
	Kind  gamemanager.Kind
	Limit int
}
