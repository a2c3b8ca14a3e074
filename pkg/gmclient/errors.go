package gmclient

import "fmt"

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("game manager API error %d: %s", e.StatusCode, e.Message)
}
