package dom

import "strings"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <input>, etc.
	KindText                 // Plain text node
	KindFragment             // Grouping without wrapper
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// Attr is a single attribute entry. Attribute order on a node follows
// first-write order; writing an existing key replaces the value in place.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Node is a markup tree node. Element nodes use Tag, Classes, Attrs and
// Children; Text nodes use Text; Fragment nodes use Children only.
//
// Tag is stored lower-case and never changes after construction. Classes
// and attribute keys are normalized before storage, not when read.
type Node struct {
	Kind     Kind
	Tag      string
	Classes  []string // ordered, duplicates collapse
	Attrs    []Attr   // ordered, keys unique
	Children []*Node
	Text     string
}

// AppendChild attaches child to n. Elements and text nodes attach by
// reference. Fragments never attach themselves: each of their children is
// deep-cloned into n in order, dissolving nested fragments recursively, so
// a fragment never appears inside a finished tree.
func (n *Node) AppendChild(child *Node) {
	if child == nil {
		return
	}
	if child.Kind == KindFragment {
		for _, c := range child.Children {
			n.AppendChild(c.Clone())
		}
		return
	}
	n.Children = append(n.Children, child)
}

// Clone returns a structurally identical copy that shares no mutable state
// with the original. The concrete kind is always preserved.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		Kind: n.Kind,
		Tag:  n.Tag,
		Text: n.Text,
	}
	if len(n.Classes) > 0 {
		out.Classes = append([]string(nil), n.Classes...)
	}
	if len(n.Attrs) > 0 {
		out.Attrs = append([]Attr(nil), n.Attrs...)
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, c.Clone())
	}
	return out
}

// AddClass adds class tokens, collapsing duplicates while keeping the
// insertion order of first appearance.
func (n *Node) AddClass(tokens ...string) {
	for _, token := range tokens {
		token = normalizeKey(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		if n.HasClass(token) {
			continue
		}
		n.Classes = append(n.Classes, token)
	}
}

// HasClass reports whether the class list contains token.
func (n *Node) HasClass(token string) bool {
	for _, c := range n.Classes {
		if c == token {
			return true
		}
	}
	return false
}

// SetAttr sets an attribute, normalizing the key. Last write wins; a
// rewritten key keeps its original position.
func (n *Node) SetAttr(key string, value any) {
	key = normalizeKey(key)
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
}

// AttrValue returns the stored value for a (normalized) attribute key.
func (n *Node) AttrValue(key string) (any, bool) {
	key = normalizeKey(key)
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return nil, false
}

// IsVoid reports whether n is an element whose tag never renders children
// or a closing tag.
func (n *Node) IsVoid() bool {
	return n.Kind == KindElement && IsVoidElement(n.Tag)
}
