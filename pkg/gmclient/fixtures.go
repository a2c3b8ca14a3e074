package gmclient

// Sample fixtures, one per game manager.

var SampleVoIPTask = VoIPTask{
	ID:          "voip-1",
	Name:        "Test VoIP Task",
	Description: "This is a test VoIP task",
	StreamURL:   "https://example.com/stream.mp3",
}

var SampleVRTask = VRTask{
	ID:          "vr-1",
	Name:        "Test VR Task",
	Description: "This is a test VR task",
	AssetURL:    "https://example.com/asset.glb",
}

var SampleIoTTask = IoTTask{
	ID:          "iot-1",
	Name:        "Test IoT Task",
	Description: "This is a test IoT task",
	DeviceID:    "device-123",
	Payload: map[string]any{
		"temperature": 25,
	},
}

var SampleGeospatialTask = GeospatialTask{
	ID:          "geo-1",
	Name:        "Test Geospatial Task",
	Description: "This is a test geospatial task",
	Location: Location{
		Latitude:  40.7128,
		Longitude: -74.006,
	},
}
