package signer

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
)

// MinRSAKeyBits is the smallest RSA modulus accepted for signing or verifying.
const MinRSAKeyBits = 2048

// RSA implements RS256, RS384 and RS512 (RSASSA-PKCS1-v1_5).
// A verifier-only instance holds just the public key.
type RSA struct {
	name       string
	hash       crypto.Hash
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
}

// NewRSASigner creates an RSA instance able to sign and verify.
func NewRSASigner(name string, key *rsa.PrivateKey) (*RSA, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: missing rsa private key", ErrInvalidKey)
	}

	s, err := NewRSAVerifier(name, &key.PublicKey)
	if err != nil {
		return nil, err
	}
	s.privateKey = key

	return s, nil
}

// NewRSAVerifier creates an RSA instance able to verify only.
func NewRSAVerifier(name string, key *rsa.PublicKey) (*RSA, error) {
	h, err := rsaHash(name)
	if err != nil {
		return nil, err
	}

	if key == nil || key.N == nil {
		return nil, fmt.Errorf("%w: missing rsa public key", ErrInvalidKey)
	}
	if key.N.BitLen() < MinRSAKeyBits {
		return nil, fmt.Errorf("%w: rsa key must be at least %d bits", ErrInvalidKey, MinRSAKeyBits)
	}

	return &RSA{name: name, hash: h, publicKey: key}, nil
}

func (s *RSA) Name() string { return s.name }

// Sign returns a PKCS #1 v1.5 signature. The scheme is deterministic.
func (s *RSA) Sign(message []byte) ([]byte, error) {
	if s.privateKey == nil {
		return nil, fmt.Errorf("%w: %w: verifier has no private key", ErrSigning, ErrInvalidKey)
	}
	if !s.hash.Available() {
		return nil, fmt.Errorf("%w: hash for %q is not available", ErrSigning, s.name)
	}

	h := s.hash.New()
	h.Write(message)

	sig, err := rsa.SignPKCS1v15(rand.Reader, s.privateKey, s.hash, h.Sum(nil))
	if err != nil {
		return nil, errors.Join(ErrSigning, err)
	}

	return sig, nil
}

func (s *RSA) Verify(message, signature []byte) error {
	if s.publicKey == nil || !s.hash.Available() {
		return ErrInvalidSignature
	}

	h := s.hash.New()
	h.Write(message)

	if err := rsa.VerifyPKCS1v15(s.publicKey, s.hash, h.Sum(nil), signature); err != nil {
		return ErrInvalidSignature
	}

	return nil
}

func rsaHash(name string) (crypto.Hash, error) {
	switch name {
	case RS256:
		return crypto.SHA256, nil
	case RS384:
		return crypto.SHA384, nil
	case RS512:
		return crypto.SHA512, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
}
