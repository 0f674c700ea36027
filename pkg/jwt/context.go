package jwt

import (
	"context"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{ name string }

func (c contextKey) String() string { return c.name }

var (
	tokenContextKey  = &contextKey{name: "jwt"}
	claimsContextKey = &contextKey{name: "jwt_claims"}
)

// SetToken stores the raw token string in the context.
func SetToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// SetClaims stores verified claims in the context.
func SetClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}

func GetClaims(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(Claims)
	return claims, ok && claims != nil
}

// GetClaimsAs decodes the claims stored in the context into dst.
func GetClaimsAs[T any](ctx context.Context, dst *T) error {
	if dst == nil {
		return ErrInvalidClaims
	}

	claims, ok := GetClaims(ctx)
	if !ok {
		return ErrInvalidClaims
	}

	return claims.Decode(dst)
}
