package jwt

import (
	"github.com/dmitrymomot/jwtkit/pkg/signer"
)

// TokenType is the "typ" header value written to every token.
const TokenType = "JWT"

// Header parameter names (RFC 7515 §4.1).
const (
	HeaderAlgorithm = "alg"
	HeaderType      = "typ"
	HeaderCritical  = "crit"
)

// Header is the JOSE header produced by the Generator.
type Header struct {
	Algorithm string `json:"alg"`
	Type      string `json:"typ"`
}

// Service pairs a Generator and a Parser bound to the same algorithm
// instance.
type Service struct {
	*Generator
	*Parser
}

// New creates a service that signs and verifies with sv.
func New(sv signer.SignerVerifier, opts ...Option) (*Service, error) {
	if sv == nil {
		return nil, ErrMissingSigner
	}

	g, err := NewGenerator(sv, opts...)
	if err != nil {
		return nil, err
	}

	p, err := NewParser(sv, opts...)
	if err != nil {
		return nil, err
	}

	return &Service{Generator: g, Parser: p}, nil
}

// NewFromString creates an HS256 service from a string secret. The secret
// must satisfy the HMAC key length bounds.
func NewFromString(secret string, opts ...Option) (*Service, error) {
	hs, err := signer.NewHS256([]byte(secret))
	if err != nil {
		return nil, err
	}
	return New(hs, opts...)
}
