package id

import (
	"crypto/rand"
	"encoding/hex"
)

// Generator produces opaque identifiers for goals.
type Generator interface {
	New() string
}

// RandomHex emits 32 hex characters from crypto/rand.
type RandomHex struct{}

func (RandomHex) New() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
