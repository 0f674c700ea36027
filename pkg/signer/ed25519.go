package signer

import (
	"crypto/ed25519"
	"fmt"
)

// Ed25519 implements the EdDSA algorithm over Curve25519.
type Ed25519 struct {
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey
}

func NewEdDSASigner(key ed25519.PrivateKey) (*Ed25519, error) {
	if len(key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: ed25519 private key must be %d bytes", ErrInvalidKey, ed25519.PrivateKeySize)
	}

	pub, ok := key.Public().(ed25519.PublicKey)
	if !ok {
		return nil, ErrInvalidKey
	}

	return &Ed25519{privateKey: key, publicKey: pub}, nil
}

func NewEdDSAVerifier(key ed25519.PublicKey) (*Ed25519, error) {
	if len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: ed25519 public key must be %d bytes", ErrInvalidKey, ed25519.PublicKeySize)
	}
	return &Ed25519{publicKey: key}, nil
}

func (s *Ed25519) Name() string { return EdDSA }

func (s *Ed25519) Sign(message []byte) ([]byte, error) {
	if len(s.privateKey) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: %w: verifier has no private key", ErrSigning, ErrInvalidKey)
	}
	return ed25519.Sign(s.privateKey, message), nil
}

func (s *Ed25519) Verify(message, signature []byte) error {
	if len(s.publicKey) != ed25519.PublicKeySize || len(signature) != ed25519.SignatureSize {
		return ErrInvalidSignature
	}
	if !ed25519.Verify(s.publicKey, message, signature) {
		return ErrInvalidSignature
	}
	return nil
}
