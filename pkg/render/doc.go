// Package render serializes dom node trees to markup strings.
//
// The serializer walks a tree depth-first in pre-order, emitting text
// payloads verbatim, splicing fragment children without wrapper markup,
// and rendering elements with their class list, attributes and children.
// Void elements (img, br, input, ...) close after the opening tag and
// never render children.
//
// # Basic Usage
//
//	html, err := render.String(node)
//
// or with indentation:
//
//	html, err := render.Pretty(node, 2)      // two spaces per level
//	html, err := render.Pretty(node, true)   // one tab per level
//	html, err := render.Pretty(node, "    ") // a literal unit per level
//
// A Renderer can be configured once and reused:
//
//	r := render.NewRenderer(render.Config{Indent: 2})
//	err := r.RenderToWriter(w, node)
//
// # Escaping
//
// The serializer performs no escaping: text payloads and attribute values
// are trusted verbatim. Callers are responsible for pre-escaping untrusted
// input, for which EscapeText, EscapeAttr and SafeText are provided.
package render
