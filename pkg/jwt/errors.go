package jwt

import (
	"errors"

	"github.com/dmitrymomot/jwtkit/pkg/signer"
	"github.com/dmitrymomot/jwtkit/pkg/validator"
)

var (
	ErrMalformedToken      = errors.New("jwt: malformed token")
	ErrParse               = errors.New("jwt: failed to parse token")
	ErrUnexpectedAlgorithm = errors.New("jwt: unexpected signing algorithm")
	ErrMissingSigner       = errors.New("jwt: missing signer")
	ErrMissingVerifier     = errors.New("jwt: missing verifier")
	ErrMissingClaims       = errors.New("jwt: missing claims")
	ErrMissingToken        = errors.New("jwt: missing token")
	ErrInvalidClaims       = errors.New("jwt: invalid claims")
)

// Re-exported so callers matching token errors need a single import.
var (
	ErrInvalidSignature = signer.ErrInvalidSignature
	ErrInvalidKey       = signer.ErrInvalidKey
	ErrSigning          = signer.ErrSigning
	ErrValidation       = validator.ErrValidation
)
