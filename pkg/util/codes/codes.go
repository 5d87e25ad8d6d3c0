package codes

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	ErrInvalidLength = errors.New("invalid code length")
	ErrMismatch      = errors.New("code does not match")
)

const (
	// DefaultDeliveryCodeLength is the length of delivery confirmation codes
	DefaultDeliveryCodeLength = 6

	// MinDeliveryCodeLength is the minimum allowed delivery code length
	MinDeliveryCodeLength = 4

	// MaxDeliveryCodeLength is the maximum allowed delivery code length
	MaxDeliveryCodeLength = 10

	// AccountCodeLength is the length of generated account reference codes
	AccountCodeLength = 8

	// Uppercase alphanumeric excluding ambiguous characters (0, O, I, 1, L)
	charsetAccountCode = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
)

// GenerateDeliveryCode creates a cryptographically secure numeric code of the
// specified length, zero-padded. These are read out loud to recipients, so
// digits only.
func GenerateDeliveryCode(length int) (string, error) {
	if length < MinDeliveryCodeLength || length > MaxDeliveryCodeLength {
		return "", ErrInvalidLength
	}

	max := new(big.Int)
	max.Exp(big.NewInt(10), big.NewInt(int64(length)), nil)

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}

	format := fmt.Sprintf("%%0%dd", length)
	return fmt.Sprintf(format, n), nil
}

// GenerateAccountCode creates a short human-readable reference code used as
// the public identifier of client and courier accounts.
func GenerateAccountCode() (string, error) {
	result := make([]byte, AccountCodeLength)
	max := big.NewInt(int64(len(charsetAccountCode)))

	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random character: %w", err)
		}
		result[i] = charsetAccountCode[n.Int64()]
	}

	return string(result), nil
}

// Hash creates a SHA-256 hash of a code, hex-encoded. Plaintext codes are
// never stored; only the hash goes into Redis.
func Hash(code string) string {
	code = strings.TrimSpace(code)

	h := sha256.New()
	h.Write([]byte(code))
	return hex.EncodeToString(h.Sum(nil))
}

// Verify compares a plaintext code against a stored hash in constant time.
// Returns nil on match, ErrMismatch otherwise.
func Verify(hash, code string) error {
	computed := Hash(code)

	if subtle.ConstantTimeCompare([]byte(hash), []byte(computed)) != 1 {
		return ErrMismatch
	}

	return nil
}
