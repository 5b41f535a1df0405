package sheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseQuantity converts a cell value to a non-negative integer. Blanks and
// "nan"/"none"/"null" yield 0, numbers are truncated toward zero, and anything
// unparsable yields 0 rather than an error so one bad cell never aborts a
// batch. Negative values clamp to 0.
func ParseQuantity(v any) int {
	n, ok := parseNumber(v)
	if !ok || n < 0 {
		return 0
	}
	return n
}

// ParseOptional converts an optional cell value (explicit From/To). ok is false
// when the cell is blank or unparsable.
func ParseOptional(v any) (int, bool) {
	return parseNumber(v)
}

func parseNumber(v any) (int, bool) {
	var s string
	switch x := v.(type) {
	case nil:
		return 0, false
	case string:
		s = x
	case int:
		return x, true
	case int64:
		return int(x), true
	case float64:
		return truncate(x)
	case float32:
		return truncate(float64(x))
	default:
		s = fmt.Sprint(x)
	}

	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "nan", "none", "null":
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return truncate(f)
}

func truncate(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
