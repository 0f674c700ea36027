package jwt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jwtkit/pkg/jwt"
)

func TestSetToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	token := "test.jwt.token"

	newCtx := jwt.SetToken(ctx, token)
	require.NotNil(t, newCtx)

	retrieved, ok := jwt.GetToken(newCtx)
	assert.True(t, ok)
	assert.Equal(t, token, retrieved)
}

func TestGetToken(t *testing.T) {
	t.Parallel()
	t.Run("TokenNotFound", func(t *testing.T) {
		retrieved, ok := jwt.GetToken(context.Background())
		assert.False(t, ok)
		assert.Empty(t, retrieved)
	})
}

func TestGetClaims(t *testing.T) {
	t.Parallel()

	t.Run("ClaimsExist", func(t *testing.T) {
		claims := jwt.Claims{"sub": "1234567890", "admin": true}
		ctx := jwt.SetClaims(context.Background(), claims)

		retrieved, ok := jwt.GetClaims(ctx)
		assert.True(t, ok)
		assert.Equal(t, claims, retrieved)
	})

	t.Run("ClaimsNotFound", func(t *testing.T) {
		retrieved, ok := jwt.GetClaims(context.Background())
		assert.False(t, ok)
		assert.Nil(t, retrieved)
	})

	t.Run("NilClaims", func(t *testing.T) {
		ctx := jwt.SetClaims(context.Background(), nil)
		_, ok := jwt.GetClaims(ctx)
		assert.False(t, ok)
	})
}

func TestGetClaimsAs(t *testing.T) {
	t.Parallel()

	type CtxTestClaims struct {
		Sub   string `json:"sub"`
		Name  string `json:"name"`
		Admin bool   `json:"admin"`
	}

	t.Run("DecodesIntoStruct", func(t *testing.T) {
		ctx := jwt.SetClaims(context.Background(), jwt.Claims{"sub": "1", "name": "John Doe", "admin": true})

		var claims CtxTestClaims
		require.NoError(t, jwt.GetClaimsAs(ctx, &claims))
		assert.Equal(t, CtxTestClaims{Sub: "1", Name: "John Doe", Admin: true}, claims)
	})

	t.Run("ClaimsNotFound", func(t *testing.T) {
		var claims CtxTestClaims
		assert.ErrorIs(t, jwt.GetClaimsAs(context.Background(), &claims), jwt.ErrInvalidClaims)
	})

	t.Run("NilDestination", func(t *testing.T) {
		ctx := jwt.SetClaims(context.Background(), jwt.Claims{"sub": "1"})
		assert.ErrorIs(t, jwt.GetClaimsAs[CtxTestClaims](ctx, nil), jwt.ErrInvalidClaims)
	})

	t.Run("IncompatibleTypes", func(t *testing.T) {
		ctx := jwt.SetClaims(context.Background(), jwt.Claims{"admin": "yes"})
		var claims CtxTestClaims
		assert.Error(t, jwt.GetClaimsAs(ctx, &claims))
	})
}
