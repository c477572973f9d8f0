package seatid

import (
	"testing"
)

func TestGenerateProducesValidTokens(t *testing.T) {
	g := NewGenerator(nil)
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		token := g.Generate()
		if len(token) != 26 {
			t.Fatalf("token %q has length %d, want 26", token, len(token))
		}
		if err := ValidateToken(token); err != nil {
			t.Fatalf("generated token failed validation: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token generated: %q", token)
		}
		seen[token] = true
	}
}

type fixedRand struct{ value int }

func (f fixedRand) Intn(n int) int { return f.value % n }

func TestGenerateWithInjectedRand(t *testing.T) {
	g := NewGenerator(fixedRand{value: 7})
	a := g.Generate()
	if err := ValidateToken(a); err != nil {
		t.Fatalf("token from injected source failed validation: %v", err)
	}
}

func TestValidateToken(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"Too short", "abc", true},
		{"Too long", "01234567890123456789012345678", true},
		{"Invalid character", "0123456789012345678901234u", true},
		{"Leading char out of range", "z1234567890123456789012345", true},
		{"Valid", "01h455vb4pex5vsknk084sn02q", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateToken(tt.token)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateToken(%q) expected error", tt.token)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateToken(%q) unexpected error: %v", tt.token, err)
			}
		})
	}
}

func TestValidateRoomCode(t *testing.T) {
	valid := []string{"ABC", "ROOM42", "A1B2C3D4"}
	for _, code := range valid {
		if err := ValidateRoomCode(code); err != nil {
			t.Errorf("ValidateRoomCode(%q) unexpected error: %v", code, err)
		}
	}

	invalid := []string{"", "AB", "lowercase", "TOOLONGCODE", "BAD CODE", "N0-PE"}
	for _, code := range invalid {
		if err := ValidateRoomCode(code); err == nil {
			t.Errorf("ValidateRoomCode(%q) expected error", code)
		}
	}
}
