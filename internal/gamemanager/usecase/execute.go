package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"game-manager/internal/gamemanager"
)

// ExecuteVoIP runs a VoIP task against its audio stream.
func (uc *implUseCase) ExecuteVoIP(ctx context.Context, task gamemanager.VoIPTask) (gamemanager.ExecuteOutput, error) {
	if err := uc.validateBase(task.TaskBase); err != nil {
		return gamemanager.ExecuteOutput{}, err
	}
	if strings.TrimSpace(task.StreamURL) == "" {
		return gamemanager.ExecuteOutput{}, fmt.Errorf("%w: stream url is required", gamemanager.ErrInvalidTask)
	}

	return uc.execute(ctx, gamemanager.KindVoIP, task.TaskBase, "Stream URL: "+task.StreamURL), nil
}

// ExecuteVR runs a VR task against its 3D asset.
func (uc *implUseCase) ExecuteVR(ctx context.Context, task gamemanager.VRTask) (gamemanager.ExecuteOutput, error) {
	if err := uc.validateBase(task.TaskBase); err != nil {
		return gamemanager.ExecuteOutput{}, err
	}
	if strings.TrimSpace(task.AssetURL) == "" {
		return gamemanager.ExecuteOutput{}, fmt.Errorf("%w: asset url is required", gamemanager.ErrInvalidTask)
	}

	return uc.execute(ctx, gamemanager.KindVR, task.TaskBase, "Asset URL: "+task.AssetURL), nil
}

// ExecuteIoT runs an IoT task for a device. The payload is logged as JSON.
func (uc *implUseCase) ExecuteIoT(ctx context.Context, task gamemanager.IoTTask) (gamemanager.ExecuteOutput, error) {
	if err := uc.validateBase(task.TaskBase); err != nil {
		return gamemanager.ExecuteOutput{}, err
	}
	if strings.TrimSpace(task.DeviceID) == "" {
		return gamemanager.ExecuteOutput{}, fmt.Errorf("%w: device id is required", gamemanager.ErrInvalidTask)
	}

	payload, err := json.Marshal(task.Payload)
	if err != nil {
		return gamemanager.ExecuteOutput{}, fmt.Errorf("%w: payload: %w", gamemanager.ErrInvalidTask, err)
	}

	return uc.execute(ctx, gamemanager.KindIoT, task.TaskBase,
		"Device ID: "+task.DeviceID,
		"Payload: "+string(payload),
	), nil
}

// ExecuteGeospatial runs a geospatial task at its location.
func (uc *implUseCase) ExecuteGeospatial(ctx context.Context, task gamemanager.GeospatialTask) (gamemanager.ExecuteOutput, error) {
	if err := uc.validateBase(task.TaskBase); err != nil {
		return gamemanager.ExecuteOutput{}, err
	}
	if err := uc.validateLocation(task.Location); err != nil {
		return gamemanager.ExecuteOutput{}, err
	}

	detail := fmt.Sprintf("Location: %v, %v", task.Location.Latitude, task.Location.Longitude)
	return uc.execute(ctx, gamemanager.KindGeospatial, task.TaskBase, detail), nil
}

// execute logs the task and each detail line, stamps it and appends it to
// the history. The stored Detail joins the lines with ", ".
// The task has run once it is logged, so a history failure is only logged.
func (uc *implUseCase) execute(ctx context.Context, kind gamemanager.Kind, base gamemanager.TaskBase, details ...string) gamemanager.ExecuteOutput {
	uc.l.Infof(ctx, "Executing %s task: %s", uc.kindLabel(kind), base.Name)
	for _, line := range details {
		uc.l.Infof(ctx, "%s", line)
	}
	detail := strings.Join(details, ", ")

	exec := gamemanager.Execution{
		RunID:       uc.newID(),
		Kind:        kind,
		TaskID:      base.ID,
		Name:        base.Name,
		Description: base.Description,
		Detail:      detail,
		ExecutedAt:  uc.now(),
	}

	if err := uc.repo.RecordExecution(ctx, exec); err != nil {
		uc.l.Warnf(ctx, "%s: RecordExecution %s: %v", LogPrefixExecute, exec.RunID, err)
	}

	return gamemanager.ExecuteOutput{Execution: exec}
}
