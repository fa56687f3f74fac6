package dom

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Props carries a bag of attributes, class tokens, event bindings and
// nested content for an element under construction. Two keys are reserved:
// "content" resolves its value as nested content, and "class" merges class
// tokens (split on space and dot). Callable values become event bindings;
// everything else becomes an attribute.
type Props map[string]any

// Apply merges content into target following the permissive resolution
// rules. Accepted shapes: nil, *Node, scalars (string, bool, integers,
// floats), nested sequences ([]any, []*Node, []string, []Attr), Attr,
// EventHandler, and Props-style maps. Unrecognized shapes, including
// callables outside a property map, are silently ignored; Apply never
// fails and never panics.
func Apply(target *Node, content ...any) {
	for _, c := range content {
		resolve(target, c)
	}
}

func resolve(target *Node, content any) {
	switch v := content.(type) {
	case nil:
		// No-op at every recursion level.

	case *Node:
		target.AppendChild(v)

	case string:
		target.AppendChild(env.CreateText(v))

	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		target.AppendChild(env.CreateText(formatScalar(v)))

	case []*Node:
		for _, c := range v {
			resolve(target, c)
		}

	case []string:
		for _, c := range v {
			resolve(target, c)
		}

	case []any:
		// Nested sequences flatten recursively, preserving order.
		for _, c := range v {
			resolve(target, c)
		}

	case Attr:
		if !v.IsEmpty() {
			applyProp(target, v.Key, v.Value)
		}

	case []Attr:
		for _, a := range v {
			if !a.IsEmpty() {
				applyProp(target, a.Key, a.Value)
			}
		}

	case EventHandler:
		if h := asHandler(v.Handler); h != nil {
			env.BindEvent(target, v.Event, h)
		}

	case Props:
		resolveProps(target, v)

	case map[string]any:
		resolveProps(target, v)

	case map[string]string:
		m := make(Props, len(v))
		for k, val := range v {
			m[k] = val
		}
		resolveProps(target, m)

	case func(), func(Event), Handler:
		// Callables are not textual content; ignored outside a property map.

	default:
		// Unrecognized content shapes are a deliberate no-op.
	}
}

// resolveProps dispatches each map entry by key and value semantics.
// Go maps carry no insertion order, so keys are visited in sorted order to
// keep the resulting tree deterministic; last write for a duplicate
// (normalized) key still wins via SetAttr.
func resolveProps(target *Node, props map[string]any) {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		applyProp(target, key, props[key])
	}
}

// applyProp applies a single key/value pair to target.
func applyProp(target *Node, key string, value any) {
	switch {
	case key == "content":
		resolve(target, value)

	case key == "class":
		target.AddClass(splitClassTokens(value)...)

	case key == "style":
		if s := normalizeStyle(value); s != "" {
			target.SetAttr("style", s)
		}

	case isCallable(value):
		bindEventKey(target, key, value)

	default:
		target.SetAttr(key, value)
	}
}

// eventKeyPattern matches an optional "on"/"on-" prefix followed by word
// characters; the capture is the event name.
var eventKeyPattern = regexp.MustCompile(`^(?:on-?)?(\w+)$`)

// bindEventKey registers value as an event binding for the event named by
// key. Keys that do not look like event names, and callables with an
// unsupported signature, are silently discarded.
func bindEventKey(target *Node, key string, value any) {
	m := eventKeyPattern.FindStringSubmatch(normalizeKey(key))
	if m == nil {
		return
	}
	h := asHandler(value)
	if h == nil {
		return
	}
	env.BindEvent(target, m[1], h)
}

// isCallable reports whether value is a function of any signature.
func isCallable(value any) bool {
	if value == nil {
		return false
	}
	switch value.(type) {
	case Handler, func(), func(Event):
		return true
	}
	return strings.HasPrefix(fmt.Sprintf("%T", value), "func")
}

// asHandler adapts the supported callable signatures to Handler.
func asHandler(value any) Handler {
	switch h := value.(type) {
	case Handler:
		return h
	case func(Event):
		return h
	case func():
		if h == nil {
			return nil
		}
		return func(Event) { h() }
	}
	return nil
}

// formatScalar renders a scalar content value as its text payload.
func formatScalar(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
