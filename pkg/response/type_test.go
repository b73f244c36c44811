package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"travel-planner/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	// Response type uses Local() time, so test depends on test runner timezone.
	// To avoid flaky tests, we just check if it gets wrapped in JSON quotes and isn't empty.
	d := response.Date(tm)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}

	str := string(b)
	if !strings.HasPrefix(str, `"`) || !strings.HasSuffix(str, `"`) {
		t.Errorf("expected string JSON format, got %s", str)
	}
	if len(str) < 10 {
		t.Errorf("marshaled string too short: %s", str)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	str := string(b)
	if !strings.HasPrefix(str, `"`) || !strings.HasSuffix(str, `"`) {
		t.Errorf("expected string JSON format, got %s", str)
	}
	if len(str) < 15 {
		t.Errorf("marshaled string too short: %s", str)
	}
}

func TestDateTimeUnmarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 12, 0, time.Local)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	var got response.DateTime
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unexpected error unmarshaling DateTime: %v", err)
	}
	if !time.Time(got).Equal(tm) {
		t.Errorf("expected %v, got %v", tm, time.Time(got))
	}

	t.Run("Inside Struct", func(t *testing.T) {
		var v struct {
			CreatedAt response.DateTime `json:"created_at"`
		}
		if err := json.Unmarshal([]byte(`{"created_at":"2026-10-19 19:00:14"}`), &v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if time.Time(v.CreatedAt).Hour() != 19 {
			t.Errorf("unexpected time: %v", time.Time(v.CreatedAt))
		}
	})

	t.Run("Wrong Layout", func(t *testing.T) {
		var got response.DateTime
		if err := json.Unmarshal([]byte(`"2026-10-19T19:00:14Z"`), &got); err == nil {
			t.Error("expected error for RFC3339 input")
		}
	})
}

func TestDateUnmarshalJSON(t *testing.T) {
	var got response.Date
	if err := json.Unmarshal([]byte(`"2024-05-01"`), &got); err != nil {
		t.Fatalf("unexpected error unmarshaling Date: %v", err)
	}
	if y, m, d := time.Time(got).Date(); y != 2024 || m != time.May || d != 1 {
		t.Errorf("unexpected date: %v", time.Time(got))
	}
}
