package validator

import (
	"math/big"
	"strconv"
)

// NewerThan passes when the claim is a number strictly greater than
// timestamp. Equal values fail.
func NewerThan(timestamp int64) Rule {
	return timeRule(timestamp, "newer than", func(cmp int) bool { return cmp > 0 })
}

// NewerThanOrSame passes when the claim is a number greater than or equal to timestamp.
func NewerThanOrSame(timestamp int64) Rule {
	return timeRule(timestamp, "newer than or same as", func(cmp int) bool { return cmp >= 0 })
}

// OlderThan passes when the claim is a number strictly less than timestamp.
func OlderThan(timestamp int64) Rule {
	return timeRule(timestamp, "older than", func(cmp int) bool { return cmp < 0 })
}

// OlderThanOrSame passes when the claim is a number less than or equal to timestamp.
func OlderThanOrSame(timestamp int64) Rule {
	return timeRule(timestamp, "older than or same as", func(cmp int) bool { return cmp <= 0 })
}

func timeRule(timestamp int64, relation string, holds func(cmp int) bool) Rule {
	return comparison{
		threshold: new(big.Rat).SetInt64(timestamp),
		display:   strconv.FormatInt(timestamp, 10),
		relation:  relation,
		holds:     holds,
	}
}
