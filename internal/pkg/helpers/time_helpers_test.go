package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("2h", time.Minute); got != 2*time.Hour {
		t.Errorf("ParseDuration(\"2h\") = %v, want 2h", got)
	}
	if got := ParseDuration("nonsense", time.Minute); got != time.Minute {
		t.Errorf("ParseDuration(\"nonsense\") = %v, want the default", got)
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "rfc3339", value: "2025-01-10T09:30:00Z"},
		{name: "datetime-local with seconds", value: "2025-01-10T09:30:00"},
		{name: "datetime-local", value: "2025-01-10T09:30"},
		{name: "space separated", value: "2025-01-10 09:30:00"},
		{name: "bare date", value: "2025-01-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.value)
			if err != nil {
				t.Fatalf("ParseTime(%q) returned error: %v", tt.value, err)
			}
			if got.Year() != 2025 || got.Month() != time.January || got.Day() != 10 {
				t.Errorf("ParseTime(%q) = %v, want January 10 2025", tt.value, got)
			}
		})
	}

	if _, err := ParseTime("10/01/2025"); err == nil {
		t.Error("ParseTime should reject an unknown format")
	}
}
