package jwt

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/jwtkit/pkg/codec"
)

// Registered claim names (RFC 7519 §4.1).
const (
	ClaimID        = "jti"
	ClaimSubject   = "sub"
	ClaimIssuer    = "iss"
	ClaimAudience  = "aud"
	ClaimExpiresAt = "exp"
	ClaimNotBefore = "nbf"
	ClaimIssuedAt  = "iat"
)

// Claims maps claim names to JSON-representable values.
type Claims map[string]any

// NewClaims returns claims with a random "jti" and "iat"/"nbf" set to now.
// "exp" is set only when ttl is positive.
func NewClaims(now time.Time, ttl time.Duration) Claims {
	c := Claims{
		ClaimID:        uuid.NewString(),
		ClaimIssuedAt:  now.Unix(),
		ClaimNotBefore: now.Unix(),
	}
	if ttl > 0 {
		c[ClaimExpiresAt] = now.Add(ttl).Unix()
	}
	return c
}

// ClaimsFrom converts any JSON-serialisable value, typically a struct with
// json tags, into Claims.
func ClaimsFrom(v any) (Claims, error) {
	if v == nil {
		return nil, ErrMissingClaims
	}

	if c, ok := v.(Claims); ok {
		return c, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal claims: %w", err)
	}

	obj, err := codec.StrictJSON{}.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidClaims, err)
	}

	return Claims(obj), nil
}

// Set assigns a claim and returns c for chaining.
func (c Claims) Set(name string, value any) Claims {
	c[name] = value
	return c
}

func (c Claims) String(name string) (string, bool) {
	s, ok := c[name].(string)
	return s, ok
}

// Int64 returns an integral numeric claim. Strings are not parsed.
func (c Claims) Int64(name string) (int64, bool) {
	switch v := c[name].(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	case float64:
		return floatToInt64(v)
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	default:
		return 0, false
	}
}

// Time interprets a numeric claim as seconds since the Unix epoch.
func (c Claims) Time(name string) (time.Time, bool) {
	ts, ok := c.Int64(name)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(ts, 0), true
}

// Decode copies the claims into dst, which must be a pointer.
func (c Claims) Decode(dst any) error {
	if dst == nil {
		return fmt.Errorf("%w: nil destination", ErrInvalidClaims)
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal claims: %w", err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to unmarshal claims: %w", err)
	}

	return nil
}

func floatToInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// StandardClaims mirrors the registered claims and is a convenient target
// for Parser.ParseInto or a source for ClaimsFrom.
type StandardClaims struct {
	ID        string `json:"jti,omitempty"`
	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	Audience  string `json:"aud,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	NotBefore int64  `json:"nbf,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
}
