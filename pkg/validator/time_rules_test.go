package validator_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jwtkit/pkg/validator"
)

func TestNewerThan(t *testing.T) {
	t.Parallel()

	t.Run("passes when claim is newer than the time", func(t *testing.T) {
		err := validator.NewerThan(13).Validate("claim", 666)
		assert.NoError(t, err)
	})

	t.Run("fails when claim is the same time", func(t *testing.T) {
		err := validator.NewerThan(666).Validate("claim", 666)
		require.Error(t, err)
		assert.EqualError(t, err, "The `claim` must be newer than `666`.")
		assert.ErrorIs(t, err, validator.ErrValidation)
		assert.ErrorIs(t, err, validator.ErrRuleFailed)
	})

	t.Run("fails when claim is older than the time", func(t *testing.T) {
		err := validator.NewerThan(666).Validate("claim", 13)
		require.Error(t, err)
		assert.EqualError(t, err, "The `claim` must be newer than `666`.")
	})

	t.Run("accepts decoded json numbers", func(t *testing.T) {
		assert.NoError(t, validator.NewerThan(13).Validate("claim", json.Number("666")))
		assert.NoError(t, validator.NewerThan(13).Validate("claim", float64(666)))
		assert.Error(t, validator.NewerThan(666).Validate("claim", json.Number("666")))
	})

	t.Run("does not coerce strings", func(t *testing.T) {
		err := validator.NewerThan(13).Validate("claim", "666")
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrTypeMismatch)
		assert.EqualError(t, err, "The `claim` must be a number.")
	})

	t.Run("rejects other kinds", func(t *testing.T) {
		for _, v := range []any{nil, true, []any{1}, map[string]any{"a": 1}} {
			assert.ErrorIs(t, validator.NewerThan(13).Validate("claim", v), validator.ErrTypeMismatch)
		}
	})

	t.Run("error carries the claim name", func(t *testing.T) {
		err := validator.NewerThan(666).Validate("exp", 1)
		var verr *validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "exp", verr.Claim)
	})
}

func TestNewerThanOrSame(t *testing.T) {
	t.Parallel()

	rule := validator.NewerThanOrSame(666)
	assert.NoError(t, rule.Validate("claim", 666))
	assert.NoError(t, rule.Validate("claim", 667))
	assert.EqualError(t, rule.Validate("claim", 665), "The `claim` must be newer than or same as `666`.")
}

func TestOlderThan(t *testing.T) {
	t.Parallel()

	rule := validator.OlderThan(666)
	assert.NoError(t, rule.Validate("claim", 13))
	assert.EqualError(t, rule.Validate("claim", 666), "The `claim` must be older than `666`.")
	assert.EqualError(t, rule.Validate("claim", 1000), "The `claim` must be older than `666`.")
	assert.ErrorIs(t, rule.Validate("claim", "13"), validator.ErrTypeMismatch)
}

func TestOlderThanOrSame(t *testing.T) {
	t.Parallel()

	rule := validator.OlderThanOrSame(666)
	assert.NoError(t, rule.Validate("claim", 666))
	assert.NoError(t, rule.Validate("claim", 13))
	assert.EqualError(t, rule.Validate("claim", 667), "The `claim` must be older than or same as `666`.")
}

func TestTimeRules_LargeTimestamps(t *testing.T) {
	t.Parallel()

	const bound = int64(9007199254740992)

	err := validator.OlderThanOrSame(bound).Validate("nbf", json.Number("9007199254740993"))
	require.Error(t, err)
	assert.EqualError(t, err, "The `nbf` must be older than or same as `9007199254740992`.")

	assert.NoError(t, validator.OlderThanOrSame(bound).Validate("nbf", json.Number("9007199254740992")))
	assert.Error(t, validator.NewerThanOrSame(bound+1).Validate("exp", json.Number("9007199254740992")))
	assert.Error(t, validator.NewerThan(bound).Validate("exp", int64(bound)))
	assert.NoError(t, validator.NewerThan(bound).Validate("exp", int64(bound+1)))
}
