package dom

import "fmt"

// Text creates a text node. The payload is emitted verbatim at
// serialization time; pre-escape untrusted input (see render.SafeText).
func Text(content string) *Node {
	return env.CreateText(content)
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Fragment resolves content into a fragment node. Appending the result to
// any node splices its children in place; the fragment itself never
// appears in a finished tree.
func Fragment(content ...any) *Node {
	node := env.CreateFragment()
	Apply(node, content...)
	return node
}

// Checkbox builds <input type="checkbox">. The first bool argument is
// promoted to the checked attribute; everything else passes through as
// ordinary content.
func Checkbox(content ...any) *Node {
	node := CreateElement("input", Type("checkbox"))
	value, rest, found := extractScalar(content, func(v any) bool {
		_, ok := v.(bool)
		return ok
	})
	if found {
		node.SetAttr("checked", value)
	}
	Apply(node, rest...)
	return node
}

// NumberBox builds <input type="number">. The first numeric argument is
// promoted to the value attribute.
func NumberBox(content ...any) *Node {
	node := CreateElement("input", Type("number"))
	value, rest, found := extractScalar(content, isNumber)
	if found {
		node.SetAttr("value", value)
	}
	Apply(node, rest...)
	return node
}

// TextBox builds <input type="text">. The first string argument is
// promoted to the value attribute.
func TextBox(content ...any) *Node {
	node := CreateElement("input", Type("text"))
	value, rest, found := extractScalar(content, func(v any) bool {
		_, ok := v.(string)
		return ok
	})
	if found {
		node.SetAttr("value", value)
	}
	Apply(node, rest...)
	return node
}

// Stylesheet builds <link rel="stylesheet">. The first string argument is
// promoted to the href attribute.
func Stylesheet(content ...any) *Node {
	node := CreateElement("link", Rel("stylesheet"))
	value, rest, found := extractScalar(content, func(v any) bool {
		_, ok := v.(string)
		return ok
	})
	if found {
		node.SetAttr("href", value)
	}
	Apply(node, rest...)
	return node
}

// extractScalar removes the first argument matching the predicate and
// returns it alongside the remaining arguments.
func extractScalar(content []any, match func(any) bool) (any, []any, bool) {
	for i, c := range content {
		if match(c) {
			rest := make([]any, 0, len(content)-1)
			rest = append(rest, content[:i]...)
			rest = append(rest, content[i+1:]...)
			return c, rest, true
		}
	}
	return nil, content, false
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}

// If returns the node if condition is true, nil otherwise. A nil node is
// a no-op when passed as content.
func If(condition bool, node *Node) *Node {
	if condition {
		return node
	}
	return nil
}

// Range maps a slice to nodes, dropping nils.
func Range[T any](items []T, fn func(item T, index int) *Node) []*Node {
	result := make([]*Node, 0, len(items))
	for i, item := range items {
		if node := fn(item, i); node != nil {
			result = append(result, node)
		}
	}
	return result
}
