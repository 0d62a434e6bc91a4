package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// Fingerprint is a deterministic hash over an ordered sequence of
// label/value pairs. Callers are responsible for supplying a stable
// ordering; the same rows in the same order always produce the same hash.
func Fingerprint(labels []string, values []float64) Hash {
	var data strings.Builder
	for i, label := range labels {
		data.WriteString(label)
		if i < len(values) {
			data.WriteString(fmt.Sprintf("%.12g", values[i]))
		}
	}
	return NewHash([]byte(data.String()))
}
