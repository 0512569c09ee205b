package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Alphabet for generated temporary credentials. Ambiguous glyphs
// (0/O, 1/l/I) are excluded because the credential is read and retyped.
const passwordAlphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateTempPassword produces a random temporary credential of the
// given length using crypto/rand. Every provisioned employee gets a
// distinct credential.
func GenerateTempPassword(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("password length must be positive, got %d", length)
	}

	buf := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}

	return string(buf), nil
}
