package intmath

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// ToInteger converts v to int when it holds a true integer: any Go integer
// type, or a json.Number without fraction or exponent. Floats, strings and
// other values are rejected, as are unsigned values that overflow int.
func ToInteger(v interface{}) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		if x < math.MinInt || x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case uint:
		if x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		if uint64(x) > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case uint64:
		if x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case json.Number:
		return ParseInteger(string(x))
	}
	return 0, false
}

// ParseInteger parses a base-10 integer literal. Decimal points, exponents and
// non-numeric text are rejected. Literals beyond the int range saturate to
// math.MinInt/MaxInt so they fail range checks rather than type checks.
func ParseInteger(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return n, true
		}
		return 0, false
	}
	return n, true
}

// ParseValues turns command-line style arguments into list elements: integer
// literals become int, anything else is kept as the original string so the
// list validation reports it as a non-integer element.
func ParseValues(args []string) []interface{} {
	values := make([]interface{}, len(args))
	for i, a := range args {
		if n, ok := ParseInteger(a); ok {
			values[i] = n
			continue
		}
		values[i] = a
	}
	return values
}
