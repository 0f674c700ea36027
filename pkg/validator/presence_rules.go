package validator

import (
	"fmt"
	"reflect"
)

// NotNull passes for any value except JSON null.
func NotNull() Rule {
	return RuleFunc(func(name string, value any) error {
		if kindOf(value) == kindNull {
			return failed(name, fmt.Sprintf("The `%s` must not be null.", name))
		}
		return nil
	})
}

// NotEmpty rejects null, false, zero, the empty string and empty arrays or objects.
func NotEmpty() Rule {
	return RuleFunc(func(name string, value any) error {
		if isEmpty(value) {
			return failed(name, fmt.Sprintf("The `%s` must not be empty.", name))
		}
		return nil
	})
}

func isEmpty(v any) bool {
	switch kindOf(v) {
	case kindNull:
		return true
	case kindBool:
		return !reflect.ValueOf(v).Bool()
	case kindNumber:
		n, ok := toNumber(v)
		return !ok || n.Sign() == 0
	case kindString, kindArray, kindObject:
		return reflect.ValueOf(v).Len() == 0
	default:
		return false
	}
}
