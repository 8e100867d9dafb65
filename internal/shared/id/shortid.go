// Package id generates short random identifiers used in stored file names.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	DefaultLength = 12
)

// Generate creates a cryptographically random, URL-safe Base62 string.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		out[i] = alphabet[n.Int64()]
	}

	return string(out), nil
}

// MustGenerate is Generate that panics when the system random source fails.
func MustGenerate(length int) string {
	s, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return s
}
