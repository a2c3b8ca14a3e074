package gmclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-manager/pkg/gmclient"
)

func TestGameManagerClient(t *testing.T) {
	var lastBody map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("/voip-game-manager/tasks", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if r.Header.Get("Content-Type") != "application/json" {
				w.WriteHeader(http.StatusUnsupportedMediaType)
				return
			}
			raw, _ := io.ReadAll(r.Body)
			json.Unmarshal(raw, &lastBody)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{
				"error_code": 0,
				"message":    "Success",
				"data": map[string]any{"execution": map[string]any{
					"run_id":      "run-1",
					"kind":        "voip",
					"task_id":     lastBody["id"],
					"name":        lastBody["name"],
					"detail":      "Stream URL: " + lastBody["streamUrl"].(string),
					"executed_at": "2024-06-01T12:00:00Z",
				}},
			})
			return
		}
		if r.Method == http.MethodGet {
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			json.NewEncoder(w).Encode(map[string]any{
				"error_code": 0,
				"message":    "Success",
				"data": map[string]any{
					"executions": []map[string]any{{"run_id": "run-1", "kind": "voip", "task_id": "voip-1"}},
					"total":      1,
				},
			})
			return
		}
	})
	mux.HandleFunc("/vr-game-manager/tasks", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"error_code": 1, "message": "assetUrl is required"})
	})
	mux.HandleFunc("/iot-game-manager/tasks", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "upstream down")
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := gmclient.NewClient(ts.URL + "/")
	ctx := context.Background()

	t.Run("SubmitVoIPTask", func(t *testing.T) {
		exec, err := client.SubmitVoIPTask(ctx, gmclient.SampleVoIPTask)
		require.NoError(t, err)

		assert.Equal(t, map[string]any{
			"id":          "voip-1",
			"name":        "Test VoIP Task",
			"description": "This is a test VoIP task",
			"streamUrl":   "https://example.com/stream.mp3",
		}, lastBody)

		assert.Equal(t, "run-1", exec.RunID)
		assert.Equal(t, gmclient.KindVoIP, exec.Kind)
		assert.Equal(t, "voip-1", exec.TaskID)
		assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), exec.ExecutedAt.UTC())
	})

	t.Run("ListExecutions", func(t *testing.T) {
		list, err := client.ListExecutions(ctx, gmclient.KindVoIP, 5)
		require.NoError(t, err)
		assert.Equal(t, 1, list.Total)
		require.Len(t, list.Executions, 1)
		assert.Equal(t, "voip-1", list.Executions[0].TaskID)
	})

	t.Run("APIError with envelope", func(t *testing.T) {
		_, err := client.SubmitVRTask(ctx, gmclient.VRTask{ID: "vr-1", Name: "n"})
		var apiErr *gmclient.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, 1, apiErr.Code)
		assert.Equal(t, "assetUrl is required", apiErr.Message)
	})

	t.Run("APIError without envelope", func(t *testing.T) {
		_, err := client.SubmitIoTTask(ctx, gmclient.SampleIoTTask)
		var apiErr *gmclient.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Equal(t, "upstream down", apiErr.Message)
	})

	t.Run("Not found route", func(t *testing.T) {
		_, err := client.SubmitGeospatialTask(ctx, gmclient.SampleGeospatialTask)
		var apiErr *gmclient.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})

	t.Run("Server Down", func(t *testing.T) {
		badClient := gmclient.NewClient("http://localhost:59999", gmclient.WithTimeout(time.Second))
		_, err := badClient.SubmitVoIPTask(ctx, gmclient.SampleVoIPTask)
		assert.Error(t, err)
	})
}

func TestSubmitMarshalError(t *testing.T) {
	client := gmclient.NewClient("http://localhost:59999")
	_, err := client.Submit(context.Background(), gmclient.KindVoIP, map[string]any{"bad": make(chan int)})
	assert.ErrorContains(t, err, "failed to marshal")
}

func TestTasksPath(t *testing.T) {
	assert.Equal(t, "/voip-game-manager/tasks", gmclient.KindVoIP.TasksPath())
	assert.Equal(t, "/vr-game-manager/tasks", gmclient.KindVR.TasksPath())
	assert.Equal(t, "/iot-game-manager/tasks", gmclient.KindIoT.TasksPath())
	assert.Equal(t, "/geospatial-game-manager/tasks", gmclient.KindGeospatial.TasksPath())
}
