package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"game-manager/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	dt := response.DateTime(time.Date(2024, 5, 1, 22, 30, 0, 0, loc))

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	if got, want := string(b), `"2024-05-01T15:30:00Z"`; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	var back time.Time
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("DateTime output should parse as RFC3339: %v", err)
	}
}
