package validator

import (
	"errors"
	"fmt"
	"time"
)

// Entry binds a rule to the claim it inspects.
type Entry struct {
	Claim    string
	Rule     Rule
	Required bool
}

// Required creates an entry that fails when the claim is absent.
func Required(claim string, rule Rule) Entry {
	return Entry{Claim: claim, Rule: rule, Required: true}
}

// Optional creates an entry that is skipped when the claim is absent.
func Optional(claim string, rule Rule) Entry {
	return Entry{Claim: claim, Rule: rule}
}

// Validator evaluates its entries in insertion order and stops at the first
// failure. It is immutable and safe for concurrent use.
type Validator struct {
	entries []Entry
}

// New creates a validator from the given entries. Entries with a nil rule
// only check presence.
func New(entries ...Entry) *Validator {
	return &Validator{entries: append([]Entry(nil), entries...)}
}

// With returns a new validator holding v's entries followed by entries.
func (v *Validator) With(entries ...Entry) *Validator {
	merged := make([]Entry, 0, len(v.entries)+len(entries))
	merged = append(merged, v.entries...)
	merged = append(merged, entries...)
	return &Validator{entries: merged}
}

// Entries returns a copy of the configured entries.
func (v *Validator) Entries() []Entry {
	return append([]Entry(nil), v.entries...)
}

// Validate applies every entry to claims. Either all entries pass and nil is
// returned, or the first failure is returned as a *ValidationError.
func (v *Validator) Validate(claims map[string]any) error {
	for _, e := range v.entries {
		value, ok := claims[e.Claim]
		if !ok {
			if e.Required {
				return &ValidationError{
					Claim:   e.Claim,
					Message: fmt.Sprintf("The `%s` is required.", e.Claim),
					Err:     ErrRequired,
				}
			}
			continue
		}

		if e.Rule == nil {
			continue
		}

		if err := e.Rule.Validate(e.Claim, value); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				return err
			}
			return &ValidationError{Claim: e.Claim, Message: err.Error(), Err: err}
		}
	}

	return nil
}

// Default returns a validator for the registered time claims: "exp" must be
// in the future, "nbf" and "iat" must not be in the future. All three are
// optional. leeway widens each bound to tolerate clock skew.
func Default(now time.Time, leeway time.Duration) *Validator {
	ts := now.Unix()
	skew := int64(leeway / time.Second)

	return New(
		Optional("exp", NewerThan(ts-skew)),
		Optional("nbf", OlderThanOrSame(ts+skew)),
		Optional("iat", OlderThanOrSame(ts+skew)),
	)
}
