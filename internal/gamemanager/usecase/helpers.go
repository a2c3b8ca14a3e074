package usecase

import (
	"fmt"
	"strings"

	"game-manager/internal/gamemanager"
)

func (uc *implUseCase) validateBase(base gamemanager.TaskBase) error {
	if strings.TrimSpace(base.ID) == "" {
		return fmt.Errorf("%w: id is required", gamemanager.ErrInvalidTask)
	}
	if strings.TrimSpace(base.Name) == "" {
		return fmt.Errorf("%w: name is required", gamemanager.ErrInvalidTask)
	}
	return nil
}

func (uc *implUseCase) validateLocation(loc gamemanager.Location) error {
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range", gamemanager.ErrInvalidTask, loc.Latitude)
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range", gamemanager.ErrInvalidTask, loc.Longitude)
	}
	return nil
}

// clampLimit maps non-positive limits to the default and caps the rest.
func (uc *implUseCase) clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func (uc *implUseCase) kindLabel(kind gamemanager.Kind) string {
	switch kind {
	case gamemanager.KindVoIP:
		return "VoIP"
	case gamemanager.KindVR:
		return "VR"
	case gamemanager.KindIoT:
		return "IoT"
	default:
		return string(kind)
	}
}
