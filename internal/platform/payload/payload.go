// Package payload gives defensive accessors over the loosely-shaped objects
// the sports provider returns. Envelopes arrive as {"results": [...]} or
// {"result": [...]}, values switch between numbers and numeric strings
// between cycles, and whole branches go missing. Every helper here is total:
// malformed input yields a zero value, never a panic.
package payload

import (
	"strconv"
	"strings"
)

// Object is one raw provider object.
type Object = map[string]any

// FirstResult unwraps a provider envelope and returns its first entry.
// Both envelope spellings are honoured, "results" first. Anything that is
// not a dict holding a non-empty list collapses to an empty object.
func FirstResult(envelope any) Object {
	wrap, ok := envelope.(map[string]any)
	if !ok {
		return Object{}
	}

	for _, key := range []string{"results", "result"} {
		items, ok := wrap[key].([]any)
		if !ok || len(items) == 0 {
			continue
		}
		if first, ok := items[0].(map[string]any); ok {
			return first
		}
		return Object{}
	}

	return Object{}
}

// ResultList unwraps a provider envelope to its full entry list.
func ResultList(envelope any) []Object {
	wrap, ok := envelope.(map[string]any)
	if !ok {
		return nil
	}

	for _, key := range []string{"results", "result"} {
		items, ok := wrap[key].([]any)
		if !ok || len(items) == 0 {
			continue
		}
		out := make([]Object, 0, len(items))
		for _, item := range items {
			if obj, ok := item.(map[string]any); ok {
				out = append(out, obj)
			}
		}
		return out
	}

	return nil
}

// LookupFirst finds the envelope stored under id in a side table and unwraps
// it. The table is keyed by the id's string form.
func LookupFirst(table map[string]any, id any) Object {
	key := String(id)
	if key == "" {
		return Object{}
	}
	return FirstResult(table[key])
}

// StatusID extracts a match status code, preferring the status_id field and
// falling back to the second slot of the score array.
func StatusID(match Object) (int, bool) {
	if match == nil {
		return 0, false
	}
	if v, ok := Int(match["status_id"]); ok {
		return v, true
	}
	if score, ok := match["score"].([]any); ok && len(score) > 1 {
		return Int(score[1])
	}
	return 0, false
}

// String renders scalar values to a string; non-scalars yield "".
func String(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// Int coerces numbers and numeric strings to an int.
func Int(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case int64:
		return int(t), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// Float coerces numbers and numeric strings to a float64.
func Float(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// List returns v as a generic list, or nil.
func List(v any) []any {
	items, _ := v.([]any)
	return items
}

// Map returns v as a generic object, or nil.
func Map(v any) Object {
	obj, _ := v.(map[string]any)
	return obj
}

// LeadingInt parses the integer prefix of a value such as "4'" or "45+2".
func LeadingInt(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	s := String(v)
	if s == "" {
		return 0, false
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	parsed, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// NumberUnit splits a raw reading such as "12.5 m/s" into value and unit.
func NumberUnit(v any) (float64, string, bool) {
	if v == nil {
		return 0, "", false
	}
	s := strings.TrimSpace(String(v))
	if s == "" {
		if f, ok := Float(v); ok {
			return f, "", true
		}
		return 0, "", false
	}

	end := 0
	for end < len(s) {
		c := s[end]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0, "", false
	}
	value, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, "", false
	}
	return value, strings.TrimSpace(s[end:]), true
}
