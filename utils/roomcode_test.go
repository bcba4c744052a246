package utils

import (
	"strings"
	"testing"
)

func TestGenerateRoomCodeShape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code := GenerateRoomCode()
		if len(code) != RoomCodeLength {
			t.Fatalf("expected %d chars, got %q", RoomCodeLength, code)
		}
		if !ValidRoomCode(code) {
			t.Fatalf("generated code failed its own validation: %q", code)
		}
		seen[code] = true
	}
	// Collisions in 200 draws over 36^6 would point at a broken generator.
	if len(seen) < 199 {
		t.Fatalf("too many duplicate codes: %d unique of 200", len(seen))
	}
}

func TestNormalizeRoomCode(t *testing.T) {
	if got := NormalizeRoomCode("  ab12cd "); got != "AB12CD" {
		t.Fatalf("expected AB12CD, got %q", got)
	}
}

func TestValidRoomCode(t *testing.T) {
	if !ValidRoomCode("ABC123") {
		t.Fatalf("ABC123 should be valid")
	}
	for _, bad := range []string{"", "ABC12", "ABC1234", "abc123", "AB-123", strings.Repeat("A", 7)} {
		if ValidRoomCode(bad) {
			t.Fatalf("%q should be invalid", bad)
		}
	}
}
