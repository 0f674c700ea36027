package jwt

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/jwtkit/pkg/codec"
	"github.com/dmitrymomot/jwtkit/pkg/logger"
	"github.com/dmitrymomot/jwtkit/pkg/signer"
	"github.com/dmitrymomot/jwtkit/pkg/validator"
)

// Parser verifies tokens and returns their claims.
//
// Checks run in a fixed order: token structure, JSON decoding, header,
// signature, then claim rules. Claims are returned only after the signature
// has been verified.
type Parser struct {
	verifier   signer.Verifier
	json       codec.JSON
	base64     codec.Base64
	validator  *validator.Validator
	timeChecks bool
	leeway     time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

func NewParser(v signer.Verifier, opts ...Option) (*Parser, error) {
	if v == nil {
		return nil, ErrMissingVerifier
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Parser{
		verifier:   v,
		json:       o.json,
		base64:     o.base64,
		validator:  o.validator,
		timeChecks: o.timeChecks,
		leeway:     o.leeway,
		now:        o.now,
		logger:     o.logger,
	}, nil
}

func (p *Parser) Verifier() signer.Verifier { return p.verifier }

// Parse verifies token and returns its claims.
func (p *Parser) Parse(token string) (Claims, error) {
	claims, err := p.parse(token)
	if err != nil {
		attrs := []any{
			logger.Component("jwt.parser"),
			logger.Algorithm(p.verifier.Name()),
			logger.Error(err),
		}
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			attrs = append(attrs, logger.Claim(verr.Claim))
		}
		p.logger.Debug("token rejected", attrs...)
		return nil, err
	}
	return claims, nil
}

// ParseInto verifies token and decodes its claims into dst.
func (p *Parser) ParseInto(token string, dst any) error {
	claims, err := p.Parse(token)
	if err != nil {
		return err
	}
	return claims.Decode(dst)
}

func (p *Parser) parse(token string) (Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedToken, len(parts))
	}

	headerJSON, err := p.base64.Decode(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: header segment: %w", ErrMalformedToken, err)
	}

	claimsJSON, err := p.base64.Decode(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: claims segment: %w", ErrMalformedToken, err)
	}

	// A broken signature segment is reported as a signature failure without
	// structural detail.
	signature, err := p.base64.Decode(parts[2])
	if err != nil {
		return nil, ErrInvalidSignature
	}

	header, err := p.json.Decode(headerJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrParse, err)
	}

	claims, err := p.json.Decode(claimsJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: claims: %w", ErrParse, err)
	}

	if err := p.checkHeader(header); err != nil {
		return nil, err
	}

	// Sign over the received segments, never a re-encoding of the decoded JSON.
	if err := p.verifier.Verify([]byte(parts[0]+"."+parts[1]), signature); err != nil {
		if errors.Is(err, ErrInvalidSignature) {
			return nil, err
		}
		return nil, errors.Join(ErrInvalidSignature, err)
	}

	if p.timeChecks {
		if err := validator.Default(p.now(), p.leeway).Validate(claims); err != nil {
			return nil, err
		}
	}

	if p.validator != nil {
		if err := p.validator.Validate(claims); err != nil {
			return nil, err
		}
	}

	return Claims(claims), nil
}

// checkHeader enforces that the token names exactly the verifier's
// algorithm. The verifier never switches algorithm based on the header.
func (p *Parser) checkHeader(header map[string]any) error {
	alg, ok := header[HeaderAlgorithm].(string)
	if !ok {
		return fmt.Errorf("%w: header has no %q string", ErrParse, HeaderAlgorithm)
	}

	if alg != p.verifier.Name() {
		return fmt.Errorf("%w: %w: got %q, expected %q",
			ErrInvalidSignature, ErrUnexpectedAlgorithm, alg, p.verifier.Name())
	}

	if typ, present := header[HeaderType]; present {
		s, ok := typ.(string)
		if !ok || !strings.EqualFold(s, TokenType) {
			return fmt.Errorf("%w: unsupported token type %v", ErrParse, typ)
		}
	}

	if _, present := header[HeaderCritical]; present {
		return fmt.Errorf("%w: unsupported critical header parameters", ErrParse)
	}

	return nil
}
