package http

import (
	"game-manager/internal/gamemanager"
	"game-manager/pkg/response"
)

// --- Request DTOs ---

type taskBaseReq struct {
	ID          string `json:"id"          binding:"required,max=255"`
	Name        string `json:"name"        binding:"required,max=255"`
	Description string `json:"description" binding:"max=1000"`
}

func (r taskBaseReq) toBase() gamemanager.TaskBase {
	return gamemanager.TaskBase{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
	}
}

type voipTaskReq struct {
	taskBaseReq
	StreamURL string `json:"streamUrl" binding:"required,url"`
}

func (r voipTaskReq) toInput() gamemanager.VoIPTask {
	return gamemanager.VoIPTask{TaskBase: r.toBase(), StreamURL: r.StreamURL}
}

type vrTaskReq struct {
	taskBaseReq
	AssetURL string `json:"assetUrl" binding:"required,url"`
}

func (r vrTaskReq) toInput() gamemanager.VRTask {
	return gamemanager.VRTask{TaskBase: r.toBase(), AssetURL: r.AssetURL}
}

type iotTaskReq struct {
	taskBaseReq
	DeviceID string         `json:"deviceId" binding:"required,max=255"`
	Payload  map[string]any `json:"payload"`
}

func (r iotTaskReq) toInput() gamemanager.IoTTask {
	return gamemanager.IoTTask{TaskBase: r.toBase(), DeviceID: r.DeviceID, Payload: r.Payload}
}

type locationReq struct {
	Latitude  *float64 `json:"latitude"  binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180"`
}

type geospatialTaskReq struct {
	taskBaseReq
	Location *locationReq `json:"location" binding:"required"`
}

func (r geospatialTaskReq) toInput() gamemanager.GeospatialTask {
	return gamemanager.GeospatialTask{
		TaskBase: r.toBase(),
		Location: gamemanager.Location{
			Latitude:  *r.Location.Latitude,
			Longitude: *r.Location.Longitude,
		},
	}
}

type listReq struct {
	Limit int `form:"limit" binding:"min=0"`
}

func (r listReq) toInput(kind gamemanager.Kind) gamemanager.ListExecutionsInput {
	return gamemanager.ListExecutionsInput{Kind: kind, Limit: r.Limit}
}

// --- Response DTOs ---

type executionResp struct {
	RunID       string            `json:"run_id"`
	Kind        string            `json:"kind"`
	TaskID      string            `json:"task_id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Detail      string            `json:"detail"`
	ExecutedAt  response.DateTime `json:"executed_at" swaggertype:"string"`
}

func newExecutionResp(exec gamemanager.Execution) executionResp {
	return executionResp{
		RunID:       exec.RunID,
		Kind:        string(exec.Kind),
		TaskID:      exec.TaskID,
		Name:        exec.Name,
		Description: exec.Description,
		Detail:      exec.Detail,
		ExecutedAt:  response.DateTime(exec.ExecutedAt),
	}
}

type executeResp struct {
	Execution executionResp `json:"execution"`
}

func (h *handler) newExecuteResp(out gamemanager.ExecuteOutput) executeResp {
	return executeResp{Execution: newExecutionResp(out.Execution)}
}

type listResp struct {
	Executions []executionResp `json:"executions"`
	Total      int             `json:"total"`
}

func (h *handler) newListResp(out gamemanager.ListExecutionsOutput) listResp {
	execs := make([]executionResp, len(out.Executions))
	for i, exec := range out.Executions {
		execs[i] = newExecutionResp(exec)
	}
	return listResp{
		Executions: execs,
		Total:      out.Total,
	}
}
