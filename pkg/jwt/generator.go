package jwt

import (
	"fmt"

	"github.com/dmitrymomot/jwtkit/pkg/codec"
	"github.com/dmitrymomot/jwtkit/pkg/signer"
)

// Generator assembles signed tokens. The header is always derived from the
// bound signer; nothing in the claims can influence it.
type Generator struct {
	signer signer.Signer
	json   codec.JSON
	base64 codec.Base64
}

func NewGenerator(s signer.Signer, opts ...Option) (*Generator, error) {
	if s == nil {
		return nil, ErrMissingSigner
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Generator{
		signer: s,
		json:   o.json,
		base64: o.base64,
	}, nil
}

func (g *Generator) Signer() signer.Signer { return g.signer }
func (g *Generator) JSON() codec.JSON      { return g.json }
func (g *Generator) Base64() codec.Base64  { return g.base64 }

// Generate returns base64url(header) "." base64url(claims) "." base64url(signature).
// The output is byte-identical for identical claims, key and algorithm.
func (g *Generator) Generate(claims Claims) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	header := Header{
		Algorithm: g.signer.Name(),
		Type:      TokenType,
	}

	headerJSON, err := g.json.Encode(header)
	if err != nil {
		return "", fmt.Errorf("failed to encode header: %w", err)
	}

	claimsJSON, err := g.json.Encode(map[string]any(claims))
	if err != nil {
		return "", fmt.Errorf("failed to encode claims: %w", err)
	}

	signingInput := g.base64.Encode(headerJSON) + "." + g.base64.Encode(claimsJSON)

	signature, err := g.signer.Sign([]byte(signingInput))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signingInput + "." + g.base64.Encode(signature), nil
}
