package codes

import (
	"strings"
	"testing"
)

func TestGenerateDeliveryCode(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"default length", 6, false},
		{"minimum length", 4, false},
		{"maximum length", 10, false},
		{"too short", 3, true},
		{"too long", 11, true},
		{"zero", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := GenerateDeliveryCode(tt.length)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for length %d", tt.length)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(code) != tt.length {
				t.Errorf("got length %d, want %d", len(code), tt.length)
			}
			for _, r := range code {
				if r < '0' || r > '9' {
					t.Errorf("code %q contains non-digit %q", code, r)
				}
			}
		})
	}
}

func TestGenerateAccountCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := GenerateAccountCode()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(code) != AccountCodeLength {
			t.Fatalf("got length %d, want %d", len(code), AccountCodeLength)
		}
		for _, r := range code {
			if !strings.ContainsRune(charsetAccountCode, r) {
				t.Fatalf("code %q contains character outside charset", code)
			}
		}
		if seen[code] {
			t.Fatalf("duplicate code %q after %d generations", code, i)
		}
		seen[code] = true
	}
}

func TestHashVerify(t *testing.T) {
	code, err := GenerateDeliveryCode(6)
	if err != nil {
		t.Fatal(err)
	}

	hash := Hash(code)

	if err := Verify(hash, code); err != nil {
		t.Errorf("Verify with correct code: %v", err)
	}
	if err := Verify(hash, "  "+code+"  "); err != nil {
		t.Errorf("Verify should ignore surrounding whitespace: %v", err)
	}
	if err := Verify(hash, "000000"); err != ErrMismatch {
		t.Errorf("Verify with wrong code: got %v, want ErrMismatch", err)
	}
	if Hash(code) != hash {
		t.Error("Hash is not deterministic")
	}
}
