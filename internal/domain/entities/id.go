package entities

import (
	"crypto/rand"
	"encoding/hex"
)

const idLen = 24

// NewID generates a store-assigned opaque identifier: 24 hexadecimal
// characters from a cryptographic source.
func NewID() string {
	buf := make([]byte, idLen/2)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// IsValidID reports whether s looks like a store-assigned identifier.
// Client-generated temporary identifiers (anything else) must never reach
// the store.
func IsValidID(s string) bool {
	if len(s) != idLen {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
