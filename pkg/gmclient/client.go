package gmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client is the HTTP wrapper for the game manager task API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout of the default *http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient creates a new game manager client for baseURL, e.g. http://localhost:3000.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SubmitVoIPTask posts a task to /voip-game-manager/tasks.
func (c *Client) SubmitVoIPTask(ctx context.Context, task VoIPTask) (*Execution, error) {
	return c.Submit(ctx, KindVoIP, task)
}

// SubmitVRTask posts a task to /vr-game-manager/tasks.
func (c *Client) SubmitVRTask(ctx context.Context, task VRTask) (*Execution, error) {
	return c.Submit(ctx, KindVR, task)
}

// SubmitIoTTask posts a task to /iot-game-manager/tasks.
func (c *Client) SubmitIoTTask(ctx context.Context, task IoTTask) (*Execution, error) {
	return c.Submit(ctx, KindIoT, task)
}

// SubmitGeospatialTask posts a task to /geospatial-game-manager/tasks.
func (c *Client) SubmitGeospatialTask(ctx context.Context, task GeospatialTask) (*Execution, error) {
	return c.Submit(ctx, KindGeospatial, task)
}

// Submit posts any JSON-encodable task body to the kind's task endpoint.
func (c *Client) Submit(ctx context.Context, kind Kind, task any) (*Execution, error) {
	body, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s task: %w", kind, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+kind.TasksPath(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s task request: %w", kind, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var out struct {
		Execution Execution `json:"execution"`
	}
	if err := c.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out.Execution, nil
}

// ListExecutions fetches the kind's recent executions. limit <= 0 uses the server default.
func (c *Client) ListExecutions(ctx context.Context, kind Kind, limit int) (*ExecutionList, error) {
	url := c.baseURL + kind.TasksPath()
	if limit > 0 {
		url += fmt.Sprintf("?limit=%d", limit)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list %s request: %w", kind, err)
	}

	var out ExecutionList
	if err := c.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do sends req and decodes the envelope's data into out.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
		if decodeErr == nil && env.Message != "" {
			apiErr.Code = env.ErrorCode
			apiErr.Message = env.Message
		}
		return apiErr
	}

	if decodeErr != nil {
		return fmt.Errorf("failed to decode response: %w", decodeErr)
	}
	if len(env.Data) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
