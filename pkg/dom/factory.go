package dom

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Builder constructs an element of a fixed tag from variadic content.
type Builder func(content ...any) *Node

// ErrTagRegistered is returned when Register would overwrite an existing
// factory entry.
var ErrTagRegistered = errors.New("dom: tag already registered")

var (
	factoryMu sync.RWMutex
	factories = make(map[string]Builder)
)

// CreateElement is the public builder entry point: it allocates an element
// node for the (normalized) tag and resolves content into it.
func CreateElement(tag string, content ...any) *Node {
	node := env.CreateElement(normalizeTag(tag))
	Apply(node, content...)
	return node
}

// Tag returns the builder for a tag name, normalizing it as lower-case
// hyphenated. Builders are created lazily and memoized; arbitrary custom
// tag names are constructible without registration.
func Tag(name string) Builder {
	key := normalizeTag(name)

	factoryMu.RLock()
	b := factories[key]
	factoryMu.RUnlock()
	if b != nil {
		return b
	}

	factoryMu.Lock()
	defer factoryMu.Unlock()
	if b := factories[key]; b != nil {
		return b
	}
	b = builderFor(key)
	factories[key] = b
	return b
}

// Register installs a custom builder under name. Overwriting an existing
// entry is rejected: the error is reported and the cache is left intact.
func Register(name string, b Builder) error {
	key := normalizeTag(name)

	factoryMu.Lock()
	defer factoryMu.Unlock()
	if _, exists := factories[key]; exists {
		slog.Error("dom: refusing to overwrite tag builder", "tag", key)
		return fmt.Errorf("%w: %s", ErrTagRegistered, key)
	}
	if b == nil {
		b = builderFor(key)
	}
	factories[key] = b
	return nil
}

// builderFor binds a normalized tag name into a Builder closure.
func builderFor(tag string) Builder {
	return func(content ...any) *Node {
		node := env.CreateElement(tag)
		Apply(node, content...)
		return node
	}
}

// knownTags pre-populates the factory cache with the common HTML tag
// names, for lookup parity with the per-tag functions in tags.go.
var knownTags = []string{
	"a", "abbr", "address", "area", "article", "aside", "audio",
	"b", "base", "bdi", "bdo", "blockquote", "body", "br", "button",
	"canvas", "caption", "cite", "code", "col", "colgroup",
	"datalist", "dd", "details", "dfn", "dialog", "div", "dl", "dt",
	"em", "embed", "fieldset", "figcaption", "figure", "footer", "form",
	"h1", "h2", "h3", "h4", "h5", "h6", "head", "header", "hgroup",
	"hr", "html", "i", "iframe", "img", "input", "kbd", "label",
	"legend", "li", "link", "main", "map", "mark", "menu", "meta",
	"meter", "nav", "noscript", "object", "ol", "optgroup", "option",
	"output", "p", "param", "picture", "pre", "progress", "q",
	"rp", "rt", "ruby", "s", "samp", "script", "section", "select",
	"slot", "small", "source", "span", "strong", "style", "sub",
	"summary", "sup", "table", "tbody", "td", "template", "textarea",
	"tfoot", "th", "thead", "time", "title", "tr", "track", "u", "ul",
	"var", "video", "wbr",
}

func init() {
	for _, tag := range knownTags {
		factories[tag] = builderFor(tag)
	}
}
