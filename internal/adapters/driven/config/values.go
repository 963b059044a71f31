// Package config holds value conversions shared by the ConfigStore adapters.
// Values arrive as whatever the decoder produced (TOML yields int64 and
// []any) or whatever a caller passed to Set.
package config

import "strconv"

// AsString returns v as a string, or "" if it is not one.
func AsString(v any) string {
	s, _ := v.(string)
	return s
}

// AsInt returns v as an int. Numeric strings are parsed.
func AsInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(n)
		return i, err == nil
	default:
		return 0, false
	}
}

// AsFloat returns v as a float64. Integers and numeric strings are converted.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// AsBool returns v as a bool. "true"/"false" strings are parsed.
func AsBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, _ := strconv.ParseBool(b)
		return parsed
	default:
		return false
	}
}

// AsIntSlice returns v as []int. Non-integer items are skipped.
func AsIntSlice(v any) []int {
	switch s := v.(type) {
	case []int:
		return s
	case []int64:
		out := make([]int, 0, len(s))
		for _, n := range s {
			out = append(out, int(n))
		}
		return out
	case []any:
		out := make([]int, 0, len(s))
		for _, item := range s {
			if n, ok := AsInt(item); ok {
				out = append(out, n)
			}
		}
		return out
	default:
		return nil
	}
}
