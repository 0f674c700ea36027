package jwt_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jwtkit/pkg/jwt"
)

func TestNewClaims(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)

	t.Run("with ttl", func(t *testing.T) {
		c := jwt.NewClaims(now, time.Hour)

		jti, ok := c.String(jwt.ClaimID)
		require.True(t, ok)
		_, err := uuid.Parse(jti)
		require.NoError(t, err)

		iat, ok := c.Int64(jwt.ClaimIssuedAt)
		require.True(t, ok)
		assert.Equal(t, now.Unix(), iat)

		exp, ok := c.Time(jwt.ClaimExpiresAt)
		require.True(t, ok)
		assert.Equal(t, now.Add(time.Hour), exp)
	})

	t.Run("without ttl", func(t *testing.T) {
		c := jwt.NewClaims(now, 0)
		assert.NotContains(t, c, jwt.ClaimExpiresAt)
	})

	t.Run("unique ids", func(t *testing.T) {
		a, _ := jwt.NewClaims(now, 0).String(jwt.ClaimID)
		b, _ := jwt.NewClaims(now, 0).String(jwt.ClaimID)
		assert.NotEqual(t, a, b)
	})
}

func TestClaims_Getters(t *testing.T) {
	t.Parallel()

	c := jwt.Claims{}.
		Set("s", "x").
		Set("n", json.Number("42")).
		Set("f", 42.0).
		Set("frac", 1.5).
		Set("exp", json.Number("1e3")).
		Set("str", "42")

	s, ok := c.String("s")
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	_, ok = c.String("n")
	assert.False(t, ok)

	n, ok := c.Int64("n")
	assert.True(t, ok)
	assert.Equal(t, int64(42), n)

	n, ok = c.Int64("f")
	assert.True(t, ok)
	assert.Equal(t, int64(42), n)

	n, ok = c.Int64("exp")
	assert.True(t, ok)
	assert.Equal(t, int64(1000), n)

	_, ok = c.Int64("frac")
	assert.False(t, ok)

	_, ok = c.Int64("str")
	assert.False(t, ok)

	_, ok = c.Time("missing")
	assert.False(t, ok)
}

func TestClaimsFrom(t *testing.T) {
	t.Parallel()

	t.Run("struct", func(t *testing.T) {
		c, err := jwt.ClaimsFrom(jwt.StandardClaims{Subject: "42", ExpiresAt: 100})
		require.NoError(t, err)
		assert.Equal(t, "42", c["sub"])
		assert.Equal(t, json.Number("100"), c["exp"])
		assert.NotContains(t, c, "iss")
	})

	t.Run("claims pass through", func(t *testing.T) {
		in := jwt.Claims{"a": 1}
		c, err := jwt.ClaimsFrom(in)
		require.NoError(t, err)
		assert.Equal(t, in, c)
	})

	t.Run("nil", func(t *testing.T) {
		_, err := jwt.ClaimsFrom(nil)
		assert.ErrorIs(t, err, jwt.ErrMissingClaims)
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := jwt.ClaimsFrom([]string{"a"})
		assert.ErrorIs(t, err, jwt.ErrInvalidClaims)
	})
}
