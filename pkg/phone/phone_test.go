package phone

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{"local mobile", "01012345678", "+201012345678", nil},
		{"already e164", "+201012345678", "+201012345678", nil},
		{"with spaces", "010 1234 5678", "+201012345678", nil},
		{"international format", "0020101 2345678", "+201012345678", nil},
		{"garbage", "not a number", "", ErrUnparsable},
		{"too short", "0101", "", ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got err %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsMobile(t *testing.T) {
	if !IsMobile("01012345678") {
		t.Error("mobile number reported as non-mobile")
	}
	if IsMobile("garbage") {
		t.Error("unparsable number reported as mobile")
	}
}
