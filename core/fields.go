package core

import (
	"strconv"
	"strings"

	"github.com/workwellhq/workwell/schema"
)

// Tolerant field accessors. Questionnaire input is produced externally
// and may be absent, mistyped, or malformed; every accessor substitutes
// a neutral default instead of failing, so a bad field degrades one
// rule's contribution rather than the whole computation.

// numberField returns the field as a float64, or 0 when absent or
// unparseable.
func numberField(f schema.Fields, key string) float64 {
	v, ok := f[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return parsed
		}
	}
	return 0
}

// intField returns the field as an int, truncating fractional values,
// or 0 when absent or unparseable.
func intField(f schema.Fields, key string) int {
	return int(numberField(f, key))
}

// labelField returns the field as a trimmed string label, or "" when
// absent or not a string.
func labelField(f schema.Fields, key string) string {
	v, ok := f[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// flagField returns the boolean value of the field and whether an
// explicit boolean was present. Flag rules only fire on explicit
// values; absence is the logical absence, not false.
func flagField(f schema.Fields, key string) (value, ok bool) {
	v, present := f[key]
	if !present || v == nil {
		return false, false
	}
	b, isBool := v.(bool)
	if !isBool {
		return false, false
	}
	return b, true
}

// labelsField returns the field as a set of string labels, or an empty
// set. Non-string elements of a mixed array are skipped.
func labelsField(f schema.Fields, key string) []string {
	v, ok := f[key]
	if !ok || v == nil {
		return nil
	}
	switch items := v.(type) {
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, isStr := item.(string); isStr {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case []string:
		return items
	}
	return nil
}
