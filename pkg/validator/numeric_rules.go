package validator

import (
	"fmt"
	"math/big"
)

// comparison is the shared shape of every ordering rule: the claim must be
// numeric and holds(cmp) must be true, where cmp is the sign of
// value - threshold. Values are compared exactly, so integers beyond 2^53
// keep their identity.
type comparison struct {
	threshold *big.Rat
	display   string
	relation  string
	holds     func(cmp int) bool
}

func (c comparison) Validate(name string, value any) error {
	n, ok := toNumber(value)
	if !ok {
		return mismatch(name, kindNumber.String())
	}

	// a NaN or infinite threshold admits nothing
	if c.threshold == nil || !c.holds(n.Cmp(c.threshold)) {
		return failed(name, fmt.Sprintf("The `%s` must be %s `%s`.", name, c.relation, c.display))
	}

	return nil
}

func GreaterThan(n float64) Rule {
	return numericRule(n, "greater than", func(cmp int) bool { return cmp > 0 })
}

func GreaterThanOrEqualTo(n float64) Rule {
	return numericRule(n, "greater than or equal to", func(cmp int) bool { return cmp >= 0 })
}

func LessThan(n float64) Rule {
	return numericRule(n, "less than", func(cmp int) bool { return cmp < 0 })
}

func LessThanOrEqualTo(n float64) Rule {
	return numericRule(n, "less than or equal to", func(cmp int) bool { return cmp <= 0 })
}

func numericRule(n float64, relation string, holds func(cmp int) bool) Rule {
	return comparison{
		threshold: new(big.Rat).SetFloat64(n),
		display:   formatNumber(n),
		relation:  relation,
		holds:     holds,
	}
}
