// Package tree provides shape helpers over already-parsed generic JSON
// trees: the map[string]any / []any / scalar values produced by decoding
// into any. Extraction is a pattern match against the expected kind, failing
// cleanly on mismatch.
package tree

import (
	"encoding/json"
	"math"
)

// Object reports v as a JSON object.
func Object(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// Array reports v as a JSON array.
func Array(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

// String reports v as a JSON string.
func String(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// Coerce converts a decoded JSON value to T. Beyond direct assertion it
// bridges the numeric representations different decoders produce: json.Number
// (UseNumber mode), float64 (default encoding/json), and int (YAML trees).
// Fractional values never coerce to integer targets.
func Coerce[T any](v any) (T, bool) {
	var out T
	if v == nil {
		return out, false
	}
	if t, ok := v.(T); ok {
		return t, true
	}
	switch p := any(&out).(type) {
	case *int:
		n, ok := toInt64(v)
		if !ok || int64(int(n)) != n {
			return out, false
		}
		*p = int(n)
		return out, true
	case *int64:
		n, ok := toInt64(v)
		if !ok {
			return out, false
		}
		*p = n
		return out, true
	case *float64:
		f, ok := toFloat64(v)
		if !ok {
			return out, false
		}
		*p = f
		return out, true
	}
	return out, false
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float64:
		if math.Trunc(n) != n || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
