package signer

import "errors"

var (
	ErrInvalidKey           = errors.New("signer: invalid key")
	ErrSigning              = errors.New("signer: signing failed")
	ErrInvalidSignature     = errors.New("signer: invalid signature")
	ErrUnsupportedAlgorithm = errors.New("signer: unsupported algorithm")
	ErrKeyDerivationFailed  = errors.New("signer: key derivation failed")
)
