// Package markup re-exports the core builder and serializer surface so
// small programs can depend on a single import.
//
//	page := markup.Div(markup.Props{"class": "card"}, "hello")
//	html, _ := markup.String(page)
package markup

import (
	"github.com/markup-go/markup/pkg/dom"
	"github.com/markup-go/markup/pkg/render"
)

// Core type aliases.
type (
	Node         = dom.Node
	Kind         = dom.Kind
	Attr         = dom.Attr
	Props        = dom.Props
	Builder      = dom.Builder
	Environment  = dom.Environment
	Event        = dom.Event
	Handler      = dom.Handler
	EventHandler = dom.EventHandler
)

// Builder surface.

func CreateElement(tag string, content ...any) *Node {
	return dom.CreateElement(tag, content...)
}

func Tag(name string) Builder { return dom.Tag(name) }

func Register(name string, b Builder) error { return dom.Register(name, b) }

func Text(content string) *Node { return dom.Text(content) }

func Textf(format string, args ...any) *Node { return dom.Textf(format, args...) }

func Fragment(content ...any) *Node { return dom.Fragment(content...) }

func Apply(target *Node, content ...any) { dom.Apply(target, content...) }

// Common element builders. The full set lives in pkg/dom.

func Div(content ...any) *Node  { return dom.Div(content...) }
func Span(content ...any) *Node { return dom.Span(content...) }
func P(content ...any) *Node    { return dom.P(content...) }
func A(content ...any) *Node    { return dom.A(content...) }
func Ul(content ...any) *Node   { return dom.Ul(content...) }
func Li(content ...any) *Node   { return dom.Li(content...) }
func Img(content ...any) *Node  { return dom.Img(content...) }
func Html(content ...any) *Node { return dom.Html(content...) }
func Head(content ...any) *Node { return dom.Head(content...) }
func Body(content ...any) *Node { return dom.Body(content...) }

// Serializer surface.

func String(node *Node) (string, error) { return render.String(node) }

func Pretty(node *Node, indent any) (string, error) { return render.Pretty(node, indent) }
