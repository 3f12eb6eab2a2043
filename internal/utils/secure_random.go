package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateNumericString generates a cryptographically secure random string of
// exactly length decimal digits. Leading zeros are allowed, so the result is
// suitable for fixed-width identifiers like account numbers.
func GenerateNumericString(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be positive")
	}
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to read random digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
