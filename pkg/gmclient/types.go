package gmclient

import (
	"encoding/json"
	"time"
)

// Kind selects a game manager.
type Kind string

const (
	KindVoIP       Kind = "voip"
	KindVR         Kind = "vr"
	KindIoT        Kind = "iot"
	KindGeospatial Kind = "geospatial"
)

// TasksPath is the manager's task endpoint, e.g. /voip-game-manager/tasks.
func (k Kind) TasksPath() string {
	return "/" + string(k) + "-game-manager/tasks"
}

// VoIPTask is the body of POST /voip-game-manager/tasks.
type VoIPTask struct {
	ID          string `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
	StreamURL   string `json:"streamUrl"   yaml:"streamUrl"`
}

// VRTask is the body of POST /vr-game-manager/tasks.
type VRTask struct {
	ID          string `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
	AssetURL    string `json:"assetUrl"    yaml:"assetUrl"`
}

// IoTTask is the body of POST /iot-game-manager/tasks.
type IoTTask struct {
	ID          string         `json:"id"                yaml:"id"`
	Name        string         `json:"name"              yaml:"name"`
	Description string         `json:"description"       yaml:"description"`
	DeviceID    string         `json:"deviceId"          yaml:"deviceId"`
	Payload     map[string]any `json:"payload,omitempty" yaml:"payload"`
}

type Location struct {
	Latitude  float64 `json:"latitude"  yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// GeospatialTask is the body of POST /geospatial-game-manager/tasks.
type GeospatialTask struct {
	ID          string   `json:"id"          yaml:"id"`
	Name        string   `json:"name"        yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Location    Location `json:"location"    yaml:"location"`
}

// Execution is the server's record of an executed task.
type Execution struct {
	RunID       string    `json:"run_id"`
	Kind        Kind      `json:"kind"`
	TaskID      string    `json:"task_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Detail      string    `json:"detail"`
	ExecutedAt  time.Time `json:"executed_at"`
}

// ExecutionList is a page of recent executions, newest first.
type ExecutionList struct {
	Executions []Execution `json:"executions"`
	Total      int         `json:"total"`
}

// envelope is the service's standard response body.
type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}
