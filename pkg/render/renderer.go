package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/markup-go/markup/pkg/dom"
)

// Config configures the renderer.
type Config struct {
	// Indent selects pretty printing: nil or false for compact output,
	// true for one tab per depth level, an int for that many spaces per
	// level, or a string used as the literal unit per level.
	Indent any
}

// Renderer serializes dom node trees to markup.
type Renderer struct {
	unit   string
	pretty bool
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	unit, pretty := indentUnit(config.Indent)
	return &Renderer{unit: unit, pretty: pretty}
}

// String renders a node compactly, with no line breaks or indentation.
func String(node *dom.Node) (string, error) {
	return NewRenderer(Config{}).RenderToString(node)
}

// Pretty renders a node with the given indent configuration (see Config).
func Pretty(node *dom.Node, indent any) (string, error) {
	return NewRenderer(Config{Indent: indent}).RenderToString(node)
}

// RenderToString renders a node tree to a markup string.
func (r *Renderer) RenderToString(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *dom.Node) error {
	return r.renderNode(w, node, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *dom.Node, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case dom.KindElement:
		return r.renderElement(w, node, depth)
	case dom.KindText:
		_, err := io.WriteString(w, node.Text)
		return err
	case dom.KindFragment:
		return r.renderFragment(w, node, depth)
	default:
		return fmt.Errorf("render: unknown node kind %d", node.Kind)
	}
}

// renderElement renders an element with its class list, attributes and
// children.
func (r *Renderer) renderElement(w io.Writer, node *dom.Node, depth int) error {
	if _, err := io.WriteString(w, "<"+node.Tag); err != nil {
		return err
	}

	if len(node.Classes) > 0 {
		if _, err := fmt.Fprintf(w, ` class="%s"`, strings.Join(node.Classes, " ")); err != nil {
			return err
		}
	}

	for _, a := range node.Attrs {
		if _, err := fmt.Fprintf(w, ` %s="%s"`, strings.ToLower(a.Key), attrToString(a.Value)); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	// Void elements have no closing tag. Children, if any slipped in,
	// are silently dropped.
	if node.IsVoid() {
		return nil
	}

	for _, child := range node.Children {
		if err := r.writeBreak(w, depth+1); err != nil {
			return err
		}
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}
	if len(node.Children) > 0 {
		if err := r.writeBreak(w, depth); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</"+node.Tag+">")
	return err
}

// renderFragment emits the fragment's children concatenated, with no
// wrapping markup. Only relevant for fragments that reach the serializer
// un-dissolved.
func (r *Renderer) renderFragment(w io.Writer, node *dom.Node, depth int) error {
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth); err != nil {
			return err
		}
	}
	return nil
}

// writeBreak writes a newline plus depth indent units when indentation is
// configured.
func (r *Renderer) writeBreak(w io.Writer, depth int) error {
	if !r.pretty {
		return nil
	}
	_, err := io.WriteString(w, "\n"+strings.Repeat(r.unit, depth))
	return err
}

// attrToString converts an attribute value to its emitted form.
func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
