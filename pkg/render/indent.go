package render

import "strings"

// indentUnit maps an Indent config value to the literal unit string and
// whether pretty printing is on at all.
func indentUnit(v any) (string, bool) {
	switch u := v.(type) {
	case nil:
		return "", false
	case bool:
		if u {
			return "\t", true
		}
		return "", false
	case int:
		if u < 0 {
			return "", false
		}
		return strings.Repeat(" ", u), true
	case string:
		return u, true
	default:
		return "", false
	}
}
