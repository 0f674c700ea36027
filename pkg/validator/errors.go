package validator

import "errors"

var (
	// ErrValidation is matched by every error returned from a rule or a Validator.
	ErrValidation = errors.New("validation failed")

	// ErrRuleFailed is returned when a claim value does not satisfy a rule.
	ErrRuleFailed = errors.New("claim does not satisfy rule")

	// ErrTypeMismatch is returned when a claim value has a different JSON kind
	// than the rule parameter.
	ErrTypeMismatch = errors.New("claim type mismatch")

	// ErrRequired is returned when a required claim is absent.
	ErrRequired = errors.New("claim is required")
)
