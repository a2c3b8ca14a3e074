package gamemanager

import "errors"

var (
	ErrInvalidTask        = errors.New("invalid task")
	ErrUnknownKind        = errors.New("unknown game manager kind")
	ErrHistoryUnavailable = errors.New("execution history unavailable")
)
