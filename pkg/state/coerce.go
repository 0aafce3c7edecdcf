package state

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Coerce returns v as a T, or def when v is absent or holds another type.
// It is the one place decoded JSON values are narrowed to Go types; callers
// never type-assert on document values directly.
func Coerce[T any](v any, def T) T {
	if t, ok := v.(T); ok {
		return t
	}
	return def
}

// Int converts a decoded JSON value to an int. Whole numbers, numeric strings
// and booleans convert; anything else yields def.
func Int(v any, def int) int {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return def
		}
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
		if f, err := n.Float64(); err == nil {
			return int(f)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	case bool:
		if n {
			return 1
		}
		return 0
	}
	return def
}

// Float converts a decoded JSON number to float64, or returns def.
func Float(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
	}
	return def
}

// Text renders a scalar for display. Strings pass through, whole numbers
// print without a fractional part, and nil or composite values yield def.
func Text(v any, def string) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	}
	return def
}

// Truthy reports whether v would count as set: non-zero numbers, non-empty
// strings and collections, and true.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case string:
		return t != ""
	case map[string]any:
		return len(t) > 0
	case Doc:
		return len(t) > 0
	case []any:
		return len(t) > 0
	}
	return true
}

// Truncate cuts s to at most n characters. It counts runes, not bytes, so
// multi-byte text is never split mid-character.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
