package signer

import (
	"crypto"
	"crypto/hmac"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"errors"
	"fmt"
)

// HMAC implements the HS256, HS384 and HS512 algorithms.
type HMAC struct {
	name string
	hash crypto.Hash
	key  []byte
}

// NewHMAC creates an HMAC signer for the given algorithm identifier.
// The hash function is derived from name; unknown names fail with
// ErrUnsupportedAlgorithm and keys outside [MinKeyLength, MaxKeyLength]
// fail with ErrInvalidKey.
func NewHMAC(name string, key []byte) (*HMAC, error) {
	h, err := hmacHash(name)
	if err != nil {
		return nil, err
	}

	s := &HMAC{name: name, hash: h}
	if err := s.SetKey(key); err != nil {
		return nil, err
	}

	return s, nil
}

func NewHS256(key []byte) (*HMAC, error) { return NewHMAC(HS256, key) }
func NewHS384(key []byte) (*HMAC, error) { return NewHMAC(HS384, key) }
func NewHS512(key []byte) (*HMAC, error) { return NewHMAC(HS512, key) }

func (s *HMAC) Name() string { return s.name }

// Key returns a copy of the signing key.
func (s *HMAC) Key() []byte {
	return append([]byte(nil), s.key...)
}

// SetKey replaces the signing key after validating its length.
// It must not be called concurrently with Sign or Verify.
func (s *HMAC) SetKey(key []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	s.key = append([]byte(nil), key...)
	return nil
}

// Sign returns the raw HMAC of message. The result is deterministic for a
// given key and message.
func (s *HMAC) Sign(message []byte) ([]byte, error) {
	if !s.hash.Available() {
		return nil, fmt.Errorf("%w: hash for %q is not available", ErrSigning, s.name)
	}
	if len(s.key) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrSigning, ErrInvalidKey)
	}

	mac := hmac.New(s.hash.New, s.key)
	mac.Write(message)
	return mac.Sum(nil), nil
}

// Verify recomputes the HMAC of message and compares it with signature
// in constant time.
func (s *HMAC) Verify(message, signature []byte) error {
	expected, err := s.Sign(message)
	if err != nil {
		return errors.Join(ErrInvalidSignature, err)
	}

	if !equal(expected, signature) {
		return ErrInvalidSignature
	}

	return nil
}

func hmacHash(name string) (crypto.Hash, error) {
	switch name {
	case HS256:
		return crypto.SHA256, nil
	case HS384:
		return crypto.SHA384, nil
	case HS512:
		return crypto.SHA512, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
}
