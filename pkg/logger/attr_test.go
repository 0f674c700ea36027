package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jwtkit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("token", slog.String("alg", "HS256"), slog.Int("n", 2))
	require.Equal(t, "token", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "alg", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	assert.True(t, logger.Component("jwt.parser").Equal(slog.String("component", "jwt.parser")))
	assert.True(t, logger.Algorithm("HS256").Equal(slog.String("alg", "HS256")))
	assert.True(t, logger.TokenID("abc").Equal(slog.String("token_id", "abc")))
	assert.True(t, logger.Subject("42").Equal(slog.String("subject", "42")))
	assert.True(t, logger.Claim("exp").Equal(slog.String("claim", "exp")))

	assert.True(t, logger.TokenID("").Equal(slog.Attr{}))
	assert.True(t, logger.Subject("").Equal(slog.Attr{}))
}
