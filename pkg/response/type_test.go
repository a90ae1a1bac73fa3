package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"agentforge/pkg/response"
)

func TestDateTime_RoundTrip(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	tm := time.Date(2024, 5, 1, 22, 30, 0, 0, loc)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(b); got != `"2024-05-01 15:30:00"` {
		t.Errorf("expected UTC rendering, got %s", got)
	}

	var back response.DateTime
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !time.Time(back).Equal(tm) {
		t.Errorf("round trip = %v, want %v", time.Time(back), tm)
	}
}

func TestDateTime_UnmarshalInvalid(t *testing.T) {
	var d response.DateTime
	for _, in := range []string{`42`, `"yesterday"`, `"2024-05-01T15:30:00Z"`} {
		if err := json.Unmarshal([]byte(in), &d); err == nil {
			t.Errorf("expected error for %s", in)
		}
	}
}

func TestNewDateTime(t *testing.T) {
	if response.NewDateTime(time.Time{}) != nil {
		t.Error("zero time should yield nil")
	}

	type payload struct {
		At *response.DateTime `json:"at,omitempty"`
	}
	b, _ := json.Marshal(payload{At: response.NewDateTime(time.Time{})})
	if string(b) != `{}` {
		t.Errorf("expected omitted field, got %s", b)
	}
}
