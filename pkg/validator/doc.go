// Package validator checks decoded token claims against an ordered set of
// rules after the token signature has been verified.
//
// A Rule is a small value constructed with its parameter (for example a
// reference timestamp) that inspects one claim value. Rules never carry
// token-specific state, so a Validator can be built once and shared.
//
// # Architecture
//
//   - Rule             – interface with a single Validate(name, value) method
//   - RuleFunc         – adapter for caller-defined rules
//   - Validator        – ordered list of claim/rule pairs, fail-fast evaluation
//   - ValidationError  – the single failure reported by Validate
//
// Rule families live in separate files: time_rules.go (NewerThan, OlderThan
// and their "or same" variants), numeric_rules.go (GreaterThan, LessThan, …),
// comparable_rules.go (EqualsTo, ConsistsOf) and presence_rules.go
// (NotEmpty, NotNull).
//
// # Usage
//
//	v := validator.New(
//	    validator.Required("sub", validator.NotEmpty()),
//	    validator.Optional("exp", validator.NewerThan(time.Now().Unix())),
//	    validator.Required("aud", validator.EqualsTo("billing")),
//	)
//
//	if err := v.Validate(claims); err != nil {
//	    var verr *validator.ValidationError
//	    if errors.As(err, &verr) {
//	        // verr.Claim, verr.Message
//	    }
//	}
//
// # Error Handling
//
// Every failure matches ErrValidation. Comparing a value of the wrong JSON
// kind (a string against a numeric threshold, say) additionally matches
// ErrTypeMismatch; values are never coerced. A missing required claim
// matches ErrRequired.
package validator
