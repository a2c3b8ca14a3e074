package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-manager/internal/gamemanager"
	"game-manager/internal/gamemanager/repository"
	"game-manager/internal/gamemanager/repository/memory"
	"game-manager/internal/gamemanager/usecase"
	pkgErrors "game-manager/pkg/errors"
	"game-manager/pkg/log"
	"game-manager/pkg/response"
)

func newTestRouter(submit ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	repo := memory.New(l, memory.Options{Size: 50, TTL: time.Hour})
	h := New(l, usecase.New(repo, l))

	r := gin.New()
	RegisterRoutes(r, h, submit...)
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, response.Resp) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return w, resp
}

func TestExecuteHandlers(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		name   string
		path   string
		body   map[string]any
		kind   string
		detail string
	}{
		{
			name: "voip",
			path: "/voip-game-manager/tasks",
			body: map[string]any{
				"id":          "voip-1",
				"name":        "Test VoIP Task",
				"description": "This is a test VoIP task",
				"streamUrl":   "https://example.com/stream.mp3",
			},
			kind:   "voip",
			detail: "Stream URL: https://example.com/stream.mp3",
		},
		{
			name: "vr",
			path: "/vr-game-manager/tasks",
			body: map[string]any{
				"id":          "vr-1",
				"name":        "Test VR Task",
				"description": "This is a test VR task",
				"assetUrl":    "https://example.com/asset.glb",
			},
			kind:   "vr",
			detail: "Asset URL: https://example.com/asset.glb",
		},
		{
			name: "iot",
			path: "/iot-game-manager/tasks",
			body: map[string]any{
				"id":          "iot-1",
				"name":        "Test IoT Task",
				"description": "This is a test IoT task",
				"deviceId":    "device-123",
				"payload":     map[string]any{"temperature": 25},
			},
			kind:   "iot",
			detail: `Device ID: device-123, Payload: {"temperature":25}`,
		},
		{
			name: "geospatial",
			path: "/geospatial-game-manager/tasks",
			body: map[string]any{
				"id":          "geo-1",
				"name":        "Test Geospatial Task",
				"description": "This is a test geospatial task",
				"location":    map[string]any{"latitude": 40.7128, "longitude": -74.006},
			},
			kind:   "geospatial",
			detail: "Location: 40.7128, -74.006",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, resp := do(t, r, http.MethodPost, tc.path, tc.body)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			assert.Equal(t, 0, resp.ErrorCode)

			data := resp.Data.(map[string]any)["execution"].(map[string]any)
			assert.Equal(t, tc.kind, data["kind"])
			assert.Equal(t, tc.body["id"], data["task_id"])
			assert.Equal(t, tc.detail, data["detail"])
			assert.NotEmpty(t, data["run_id"])

			w, resp = do(t, r, http.MethodGet, tc.path, nil)
			require.Equal(t, http.StatusOK, w.Code)
			list := resp.Data.(map[string]any)
			assert.EqualValues(t, 1, list["total"])
		})
	}
}

func TestExecuteHandlersRejectInvalidBodies(t *testing.T) {
	r := newTestRouter()

	cases := map[string]struct {
		path string
		body any
	}{
		"malformed json":      {"/voip-game-manager/tasks", `{"id":`},
		"missing id":          {"/voip-game-manager/tasks", map[string]any{"name": "n", "streamUrl": "https://a.b/s.mp3"}},
		"missing stream url":  {"/voip-game-manager/tasks", map[string]any{"id": "voip-1", "name": "n"}},
		"relative asset url":  {"/vr-game-manager/tasks", map[string]any{"id": "vr-1", "name": "n", "assetUrl": "asset.glb"}},
		"missing device id":   {"/iot-game-manager/tasks", map[string]any{"id": "iot-1", "name": "n"}},
		"missing location":    {"/geospatial-game-manager/tasks", map[string]any{"id": "geo-1", "name": "n"}},
		"missing longitude":   {"/geospatial-game-manager/tasks", map[string]any{"id": "geo-1", "name": "n", "location": map[string]any{"latitude": 1.5}}},
		"latitude over range": {"/geospatial-game-manager/tasks", map[string]any{"id": "geo-1", "name": "n", "location": map[string]any{"latitude": 95, "longitude": 0}}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w, resp := do(t, r, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, response.BadRequestErrorCode, resp.ErrorCode)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestGeospatialAcceptsZeroCoordinates(t *testing.T) {
	r := newTestRouter()

	w, _ := do(t, r, http.MethodPost, "/geospatial-game-manager/tasks", map[string]any{
		"id":       "geo-0",
		"name":     "Null Island",
		"location": map[string]any{"latitude": 0, "longitude": 0},
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestListExecutionsNewestFirst(t *testing.T) {
	r := newTestRouter()

	for _, id := range []string{"vr-1", "vr-2", "vr-3"} {
		w, _ := do(t, r, http.MethodPost, "/vr-game-manager/tasks", map[string]any{
			"id": id, "name": "n", "assetUrl": "https://example.com/asset.glb",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, resp := do(t, r, http.MethodGet, "/vr-game-manager/tasks?limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	list := resp.Data.(map[string]any)
	assert.EqualValues(t, 3, list["total"])
	execs := list["executions"].([]any)
	require.Len(t, execs, 2)
	assert.Equal(t, "vr-3", execs[0].(map[string]any)["task_id"])
	assert.Equal(t, "vr-2", execs[1].(map[string]any)["task_id"])

	w, _ = do(t, r, http.MethodGet, "/vr-game-manager/tasks?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp = do(t, r, http.MethodGet, "/voip-game-manager/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, resp.Data.(map[string]any)["total"])
}

func TestSubmitMiddlewareRunsBeforeExecute(t *testing.T) {
	blocked := func(c *gin.Context) { response.TooManyRequests(c) }
	r := newTestRouter(blocked)

	w, _ := do(t, r, http.MethodPost, "/voip-game-manager/tasks", map[string]any{
		"id": "voip-1", "name": "n", "streamUrl": "https://example.com/stream.mp3",
	})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// listing is not behind the submit chain
	w, _ = do(t, r, http.MethodGet, "/voip-game-manager/tasks", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

type brokenRepo struct{}

func (brokenRepo) RecordExecution(context.Context, gamemanager.Execution) error {
	return assert.AnError
}

func (brokenRepo) ListExecutions(context.Context, repository.ListExecutionsOptions) ([]gamemanager.Execution, int, error) {
	return nil, 0, assert.AnError
}

func TestListExecutionsHistoryUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	r := gin.New()
	RegisterRoutes(r, New(l, usecase.New(brokenRepo{}, l)))

	w, resp := do(t, r, http.MethodGet, "/iot-game-manager/tasks", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, http.StatusServiceUnavailable, resp.ErrorCode)
	assert.Equal(t, response.DefaultErrorMessage, resp.Message)

	// the task already ran, so a failed history write still succeeds
	w, _ = do(t, r, http.MethodPost, "/iot-game-manager/tasks", map[string]any{
		"id": "iot-1", "name": "n", "deviceId": "device-123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestMapError(t *testing.T) {
	h := New(log.NewNop(), nil)

	tcs := map[string]struct {
		err    error
		status int
	}{
		"invalid task":        {err: gamemanager.ErrInvalidTask, status: http.StatusBadRequest},
		"unknown kind":        {err: gamemanager.ErrUnknownKind, status: http.StatusNotFound},
		"history unavailable": {err: gamemanager.ErrHistoryUnavailable, status: http.StatusServiceUnavailable},
		"unexpected":          {err: assert.AnError, status: http.StatusInternalServerError},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			httpErr, ok := pkgErrors.AsHTTPError(h.mapError(tc.err))
			require.True(t, ok)
			assert.Equal(t, tc.status, httpErr.StatusCode)
		})
	}
}
