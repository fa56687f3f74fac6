package dom

import (
	"sort"
	"strings"
)

// normalizeKey converts a caller-supplied key to the hyphenated attribute
// convention. Applied before storing any attribute key, event-binding key
// or class token.
func normalizeKey(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// normalizeTag canonicalizes a tag name for storage and factory lookup.
// Multi-word custom tags may be written with underscores.
func normalizeTag(tag string) string {
	return strings.ToLower(strings.ReplaceAll(tag, "_", "-"))
}

// normalizeStyle renders a style value to a single declaration string.
// Already-formatted strings pass through verbatim. Maps emit "key:value;"
// for each truthy entry with underscores hyphenated in keys; falsy entries
// are skipped so callers can write conditional style maps. Anything else
// yields "", meaning no style attribute is emitted.
//
// Go maps carry no insertion order, so entries are emitted in sorted key
// order to keep output deterministic.
func normalizeStyle(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case Props:
		return styleFromMap(v)
	case map[string]any:
		return styleFromMap(v)
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[k] = val
		}
		return styleFromMap(m)
	default:
		return ""
	}
}

func styleFromMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		v := m[k]
		if !truthy(v) {
			continue
		}
		b.WriteString(normalizeKey(k))
		b.WriteByte(':')
		b.WriteString(formatScalar(v))
		b.WriteByte(';')
	}
	return b.String()
}

// truthy reports whether a style entry value should be emitted.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	default:
		return true
	}
}

// splitClassTokens splits a class value on space and dot separators,
// dropping empty tokens. A value with no separators is a single token.
func splitClassTokens(value any) []string {
	s, ok := value.(string)
	if !ok {
		s = formatScalar(value)
	}
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '.'
	})
}
