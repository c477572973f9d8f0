package seatid

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"time"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

var roomCodePattern = regexp.MustCompile(`^[A-Z0-9]{3,8}$`)

// RandSource interface for dependency injection of randomness
type RandSource interface {
	Intn(n int) int
}

// Generator produces opaque seat tokens. Tokens double as reconnection keys,
// so they are generated from crypto/rand in production; tests can inject a
// deterministic RandSource.
type Generator struct {
	randSource RandSource
}

// NewGenerator creates a new generator with optional RandSource.
func NewGenerator(randSource RandSource) *Generator {
	return &Generator{randSource: randSource}
}

// Generate creates a new seat token using the default generator.
func Generate() string {
	return NewGenerator(nil).Generate()
}

// Generate creates a new seat token: a UUIDv7 encoded as a 26-character
// base32 string. The embedded timestamp keeps tokens sortable by join time.
func (g *Generator) Generate() string {
	uuid := g.generateUUIDv7()
	return encodeBase32(uuid)
}

func (g *Generator) generateUUIDv7() [16]byte {
	var uuid [16]byte

	now := time.Now().UnixMilli()

	// 48-bit timestamp in the first 6 bytes
	uuid[0] = byte(now >> 40)
	uuid[1] = byte(now >> 32)
	uuid[2] = byte(now >> 24)
	uuid[3] = byte(now >> 16)
	uuid[4] = byte(now >> 8)
	uuid[5] = byte(now)

	if g.randSource != nil {
		for i := 6; i < 16; i++ {
			uuid[i] = byte(g.randSource.Intn(256))
		}
	} else {
		if _, err := rand.Read(uuid[6:]); err != nil {
			panic("failed to generate random bytes: " + err.Error())
		}
	}

	// Version 7, variant 10
	uuid[6] = (uuid[6] & 0x0f) | 0x70
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return uuid
}

func encodeBase32(data [16]byte) string {
	result := make([]byte, 26)

	for i := 0; i < 26; i++ {
		bitOffset := i * 5
		byteIndex := bitOffset / 8
		bitIndex := bitOffset % 8

		var value uint8

		if byteIndex < 16 {
			if bitIndex <= 3 {
				value = (data[byteIndex] >> (3 - bitIndex)) & 0x1f
			} else {
				value = (data[byteIndex] << (bitIndex - 3)) & 0x1f
				if byteIndex+1 < 16 {
					value |= data[byteIndex+1] >> (11 - bitIndex)
				}
			}
		}

		result[i] = alphabet[value]
	}

	return string(result)
}

// ValidateToken checks that a seat token is well formed (26 characters of
// valid base32 with a plausible leading timestamp character).
func ValidateToken(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("seat token must be exactly 26 characters, got %d", len(id))
	}

	if id[0] > '7' {
		return fmt.Errorf("seat token first character must be 0-7, got %c", id[0])
	}

	for i, char := range id {
		valid := false
		for _, validChar := range alphabet {
			if char == validChar {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}

	return nil
}

// ValidateRoomCode checks a user-supplied room code: 3-8 upper-case
// alphanumerics.
func ValidateRoomCode(code string) error {
	if !roomCodePattern.MatchString(code) {
		return fmt.Errorf("invalid room code: %q", code)
	}
	return nil
}
