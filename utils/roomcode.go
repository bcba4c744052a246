// utils/roomcode.go - Join code generation
package utils

import (
	"crypto/rand"
	"strings"
)

// Uppercase letters and digits, minus lookalikes would shrink the space;
// the full 36-character set over 6 positions (~2.2B codes) keeps collision
// retries negligible.
const roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RoomCodeLength is the fixed join code length.
const RoomCodeLength = 6

// GenerateRoomCode returns a fixed-length uppercase alphanumeric join code.
func GenerateRoomCode() string {
	buf := make([]byte, RoomCodeLength)
	rand.Read(buf)
	for i, b := range buf {
		buf[i] = roomCodeAlphabet[int(b)%len(roomCodeAlphabet)]
	}
	return string(buf)
}

// NormalizeRoomCode upper-cases and trims a client-supplied code so lookups
// are case-insensitive.
func NormalizeRoomCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidRoomCode reports whether a normalized code has the expected shape.
func ValidRoomCode(code string) bool {
	if len(code) != RoomCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(roomCodeAlphabet, rune(code[i])) {
			return false
		}
	}
	return true
}
