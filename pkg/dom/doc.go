// Package dom provides the in-memory markup node model and the
// declarative builder used to construct document trees.
//
// # Core Types
//
// Node is the fundamental building block representing elements, text and
// fragments. Attr is a single attribute entry; Props carries a bag of
// attributes, class tokens, event bindings and nested content.
//
// # Builder API
//
// Elements are created using variadic factory functions:
//
//	Div(Props{"class": "card", "id": "main"},
//	    H1(Text("Title")),
//	    P("Content"),
//	    OnClick(handler),
//	)
//
// Content arguments are merged permissively: nil values, unknown shapes
// and stray callables are ignored rather than rejected, so conditional
// construction never needs guarding.
//
// # Environments
//
// Node creation and event binding go through an Environment. The default
// virtual environment builds plain nodes and drops event bindings with a
// logged warning; the live package provides an environment that keeps
// bindings for later dispatch. Select one with SetEnvironment at process
// start.
package dom
