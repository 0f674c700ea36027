package signer

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// MinKeyLength is the shortest accepted HMAC key, in bytes.
	MinKeyLength = 32
	// MaxKeyLength is the longest accepted HMAC key, in bytes.
	MaxKeyLength = 6144
)

// ValidateKey checks that an HMAC key length lies in [MinKeyLength, MaxKeyLength].
func ValidateKey(key []byte) error {
	if len(key) < MinKeyLength || len(key) > MaxKeyLength {
		return fmt.Errorf("%w: key length must be between %d and %d bytes, got %d",
			ErrInvalidKey, MinKeyLength, MaxKeyLength, len(key))
	}
	return nil
}

// GenerateKey creates a random HMAC key of the given length.
func GenerateKey(length int) ([]byte, error) {
	if length < MinKeyLength || length > MaxKeyLength {
		return nil, fmt.Errorf("%w: key length must be between %d and %d bytes, got %d",
			ErrInvalidKey, MinKeyLength, MaxKeyLength, length)
	}

	key := make([]byte, length)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveKey derives a purpose-bound HMAC key from master using HKDF-SHA256.
// Different info values yield independent keys from the same master secret.
func DeriveKey(master, info []byte, length int) ([]byte, error) {
	if err := ValidateKey(master); err != nil {
		return nil, err
	}
	if length < MinKeyLength || length > MaxKeyLength {
		return nil, fmt.Errorf("%w: derived key length must be between %d and %d bytes, got %d",
			ErrInvalidKey, MinKeyLength, MaxKeyLength, length)
	}

	reader := hkdf.New(sha256.New, master, nil, info)

	key := make([]byte, length)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}

	return key, nil
}
