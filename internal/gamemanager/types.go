package gamemanager

import "time"

// Kind identifies which game manager executes a task.
type Kind string

const (
	KindVoIP       Kind = "voip"
	KindVR         Kind = "vr"
	KindIoT        Kind = "iot"
	KindGeospatial Kind = "geospatial"
)

// Kinds lists every supported manager in route order.
var Kinds = []Kind{KindVoIP, KindVR, KindIoT, KindGeospatial}

// Valid reports whether k is a known manager kind.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// --- Task records ---

// TaskBase holds the fields shared by every task record.
type TaskBase struct {
	ID          string
	Name        string
	Description string
}

// VoIPTask points a voice-over-IP manager at an audio stream.
type VoIPTask struct {
	TaskBase
	StreamURL string
}

// VRTask points a virtual-reality manager at a 3D asset.
type VRTask struct {
	TaskBase
	AssetURL string
}

// IoTTask carries device data for the IoT manager.
type IoTTask struct {
	TaskBase
	DeviceID string
	Payload  map[string]any
}

// Location is a WGS84 coordinate pair in degrees.
type Location struct {
	Latitude  float64
	Longitude float64
}

// GeospatialTask places a unit of work at a location.
type GeospatialTask struct {
	TaskBase
	Location Location
}

// Execution records one executed task.
type Execution struct {
	RunID       string
	Kind        Kind
	TaskID      string
	Name        string
	Description string
	Detail      string
	ExecutedAt  time.Time
}

// --- UseCase inputs/outputs ---

type ExecuteOutput struct {
	Execution Execution
}

type ListExecutionsInput struct {
	Kind  Kind
	Limit int
}

type ListExecutionsOutput struct {
	Executions []Execution
	Total      int
}
