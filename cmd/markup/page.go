package main

import (
	"log/slog"
	"strconv"

	"github.com/markup-go/markup/pkg/dom"
)

// showcasePage assembles a small document exercising the builder surface:
// scalars, nested sequences, property maps, class merging, template
// helpers and event bindings.
func showcasePage() *dom.Node {
	features := []string{
		"fragment dissolution",
		"void element handling",
		"class-list merging",
		"permissive content resolution",
	}

	return dom.Html(dom.Lang("en"),
		dom.Head(
			dom.Title("markup showcase"),
			dom.Meta(dom.Props{"charset": "utf-8"}),
			dom.Stylesheet("/static/site.css"),
		),
		dom.Body(dom.Props{"class": "page.dark"},
			dom.Header(
				dom.H1("markup"),
				dom.P(dom.Props{"style": dom.Props{"font_size": "14px", "color": "gray"}},
					"a declarative builder for tree-structured documents"),
			),
			dom.Main(
				dom.Section(dom.ID("features"),
					dom.H2("Features"),
					dom.Ul(dom.Range(features, func(f string, i int) *dom.Node {
						return dom.Li(dom.Data("index", strconv.Itoa(i)), f)
					})),
				),
				dom.Section(dom.ID("form"),
					dom.H2("Form helpers"),
					dom.Form(
						dom.Label("Enabled", dom.Checkbox(true, dom.ID("opt-enabled"))),
						dom.Label("Count", dom.NumberBox(42, dom.ID("opt-count"))),
						dom.Label("Name", dom.TextBox("world", dom.ID("opt-name"))),
						dom.Button("Save", dom.OnClick(func(e dom.Event) {
							slog.Info("save clicked", "value", e.Value)
						})),
					),
				),
			),
			dom.Footer(dom.Fragment(
				dom.Hr(),
				dom.Small("built with the markup library"),
			)),
		),
	)
}
