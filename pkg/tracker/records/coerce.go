// Package records normalizes raw workbook values into safe,
// compute-ready forms. Nothing in this package returns an error:
// malformed input always degrades to a defined default.
package records

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ClampPoints coerces a column of raw point values into non-negative
// integers for display and ranking. Unparsable or missing values become
// 0, fractions truncate, negatives clamp to 0. The result has exactly
// one entry per input, in input order.
func ClampPoints(raw []any) []int {
	out := make([]int, len(raw))
	for i, v := range raw {
		out[i] = ClampValue(v)
	}
	return out
}

// ClampValue is the single-value form of ClampPoints.
func ClampValue(raw any) int {
	if n := Numeric(raw); n > 0 {
		return n
	}
	return 0
}

// Numeric coerces a raw cell to a truncated integer, substituting 0 for
// unparsable or missing values. Unlike ClampValue it preserves
// negatives, which can legitimately exist at rest in the points column.
func Numeric(raw any) int {
	n, ok := asFloat(raw)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return int(n)
}

func asFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, false
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// NormalizeID returns the canonical string form of an identifier. Two
// ids join iff their normalized forms are identical. Whole numeric
// cells render without a fractional part, so 5, 5.0 and "5" all
// normalize to "5"; strings are trimmed.
func NormalizeID(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ""
		}
		// The integer render only holds within int64 range; beyond it
		// the conversion would overflow into a garbage id.
		if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
