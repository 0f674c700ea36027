package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

// Rule validates a single claim value. name is the claim being inspected and
// is supplied by the caller, not the rule.
type Rule interface {
	Validate(name string, value any) error
}

// RuleFunc adapts a plain function to the Rule interface.
type RuleFunc func(name string, value any) error

func (f RuleFunc) Validate(name string, value any) error {
	return f(name, value)
}

// ValidationError describes the claim rule that failed. Error returns the
// human-readable message verbatim.
type ValidationError struct {
	Claim   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Err}
}

func failed(name, message string) error {
	return &ValidationError{Claim: name, Message: message, Err: ErrRuleFailed}
}

func mismatch(name, expected string) error {
	return &ValidationError{
		Claim:   name,
		Message: fmt.Sprintf("The `%s` must be %s.", name, expected),
		Err:     ErrTypeMismatch,
	}
}

type kind int

const (
	kindNull kind = iota
	kindBool
	kindNumber
	kindString
	kindArray
	kindObject
	kindOther
)

func (k kind) String() string {
	switch k {
	case kindNull:
		return "null"
	case kindBool:
		return "a boolean"
	case kindNumber:
		return "a number"
	case kindString:
		return "a string"
	case kindArray:
		return "an array"
	case kindObject:
		return "an object"
	default:
		return "a json value"
	}
}

// kindOf classifies v by the JSON kind it encodes to.
func kindOf(v any) kind {
	if v == nil {
		return kindNull
	}
	if _, ok := v.(json.Number); ok {
		return kindNumber
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return kindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return kindNumber
	case reflect.String:
		return kindString
	case reflect.Slice, reflect.Array:
		return kindArray
	case reflect.Map:
		return kindObject
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return kindNull
		}
		return kindOther
	default:
		return kindOther
	}
}

// maxExponent bounds the decimal exponent accepted from a json.Number.
// Anything larger is outside float64 range and would make big.Rat allocate
// an arbitrarily large power of ten.
const maxExponent = 400

// toNumber returns the exact value of v. Strings are never parsed, and NaN,
// infinities or out-of-range exponents are not numbers.
func toNumber(v any) (*big.Rat, bool) {
	if n, ok := v.(json.Number); ok {
		return parseNumber(n.String())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return new(big.Rat).SetInt64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return new(big.Rat).SetUint64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		r := new(big.Rat).SetFloat64(rv.Float())
		return r, r != nil
	default:
		return nil, false
	}
}

func parseNumber(s string) (*big.Rat, bool) {
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		exp, err := strconv.Atoi(s[i+1:])
		if err != nil || exp > maxExponent || exp < -maxExponent {
			return nil, false
		}
	}
	return new(big.Rat).SetString(s)
}

// compareNumbers returns the sign of a-b, computed without rounding.
func compareNumbers(a, b any) (int, bool) {
	x, okx := toNumber(a)
	y, oky := toNumber(b)
	if !okx || !oky {
		return 0, false
	}
	return x.Cmp(y), true
}

// equalValues reports JSON-value equality: numbers compare numerically and
// composites by their canonical encoding.
func equalValues(a, b any) (bool, bool) {
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		return false, false
	}

	switch ka {
	case kindNull:
		return true, true
	case kindNumber:
		c, ok := compareNumbers(a, b)
		if !ok {
			return false, false
		}
		return c == 0, true
	case kindBool:
		return reflect.ValueOf(a).Bool() == reflect.ValueOf(b).Bool(), true
	case kindString:
		return reflect.ValueOf(a).String() == reflect.ValueOf(b).String(), true
	default:
		x, errx := json.Marshal(a)
		y, erry := json.Marshal(b)
		if errx != nil || erry != nil {
			return false, true
		}
		return bytes.Equal(x, y), true
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	f, _ := r.Float64()
	return formatNumber(f)
}

func formatValue(v any) string {
	switch kindOf(v) {
	case kindNull:
		return "null"
	case kindString:
		return reflect.ValueOf(v).String()
	case kindNumber:
		if n, ok := v.(json.Number); ok {
			return n.String()
		}
		if r, ok := toNumber(v); ok {
			return formatRat(r)
		}
	case kindArray, kindObject:
		if data, err := json.Marshal(v); err == nil {
			return string(data)
		}
	}
	return fmt.Sprint(v)
}
