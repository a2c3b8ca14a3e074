package http

import (
	"errors"
	"net/http"

	"game-manager/internal/gamemanager"
	pkgErrors "game-manager/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, gamemanager.ErrInvalidTask):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, gamemanager.ErrUnknownKind):
		return pkgErrors.ErrNotFound
	case errors.Is(err, gamemanager.ErrHistoryUnavailable):
		return pkgErrors.ErrServiceUnavailable
	default:
		return pkgErrors.ErrInternalServerError
	}
}
