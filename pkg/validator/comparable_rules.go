package validator

import (
	"fmt"
	"reflect"
)

// EqualsTo passes when the claim equals expected. Numbers compare by value
// regardless of Go type; a claim of a different JSON kind is a type mismatch.
func EqualsTo(expected any) Rule {
	return RuleFunc(func(name string, value any) error {
		eq, sameKind := equalValues(value, expected)
		if !sameKind {
			return mismatch(name, kindOf(expected).String())
		}
		if !eq {
			return failed(name, fmt.Sprintf("The `%s` must equal to `%s`.", name, formatValue(expected)))
		}
		return nil
	})
}

// ConsistsOf passes when the claim is an array containing element.
// Useful for multi-valued claims such as "aud" or "roles".
func ConsistsOf(element any) Rule {
	return RuleFunc(func(name string, value any) error {
		if kindOf(value) != kindArray {
			return mismatch(name, kindArray.String())
		}

		rv := reflect.ValueOf(value)
		for i := range rv.Len() {
			if eq, _ := equalValues(rv.Index(i).Interface(), element); eq {
				return nil
			}
		}

		return failed(name, fmt.Sprintf("The `%s` must consist of `%s`.", name, formatValue(element)))
	})
}
