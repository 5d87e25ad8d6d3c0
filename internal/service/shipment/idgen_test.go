package shipment

import (
	"testing"
	"time"
)

func TestDisplayID(t *testing.T) {
	day := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		city string
		at   time.Time
		n    int64
		want string
	}{
		{"first ever", "Cairo", day, 1, "CAI-260131-0-0000"},
		{"within first batch", "Cairo", day, 42, "CAI-260131-0-0041"},
		{"last of first batch", "Cairo", day, 10000, "CAI-260131-0-9999"},
		{"first of second batch", "Cairo", day, 10001, "CAI-260131-1-0000"},
		{"alexandria", "Alexandria", day, 2, "ALX-260131-0-0001"},
		{"unknown city falls back", "Zamalek", day, 5, "ZAM-260131-0-0004"},
		{"case insensitive lookup", "GIZA", day, 3, "GIZ-260131-0-0002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayID(tt.city, tt.at, tt.n); got != tt.want {
				t.Errorf("DisplayID(%q, %v, %d) = %q, want %q", tt.city, tt.at, tt.n, got, tt.want)
			}
		})
	}
}

func TestGovernorateCodeShortCity(t *testing.T) {
	if got := GovernorateCode("ab"); got != "XXX" {
		t.Errorf("short city: got %q, want XXX", got)
	}
	if got := GovernorateCode("  port said  "); got != "PSD" {
		t.Errorf("trimmed lookup: got %q, want PSD", got)
	}
}
