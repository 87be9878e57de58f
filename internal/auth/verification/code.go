package verification

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const codeLength = 6

// GenerateCode returns a 6-digit numeric code. Each digit is drawn
// independently from crypto/rand so the result is uniform over 000000
// to 999999.
func GenerateCode() (string, error) {
	digits := make([]byte, codeLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generate verification code: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
