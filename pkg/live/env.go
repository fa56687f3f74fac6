package live

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/markup-go/markup/pkg/dom"
)

// Env implements dom.Environment with live event support. Node creation
// matches the virtual environment; event bindings are kept for dispatch
// instead of dropped.
type Env struct {
	mu       sync.Mutex
	seq      uint64
	handlers map[string]dom.Handler // "id_event" -> handler
	logger   *slog.Logger
}

// New creates a live environment. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Env {
	if logger == nil {
		logger = slog.Default()
	}
	return &Env{
		handlers: make(map[string]dom.Handler),
		logger:   logger,
	}
}

func (e *Env) CreateElement(tag string) *dom.Node {
	return &dom.Node{Kind: dom.KindElement, Tag: tag}
}

func (e *Env) CreateText(text string) *dom.Node {
	return &dom.Node{Kind: dom.KindText, Text: text}
}

func (e *Env) CreateFragment() *dom.Node {
	return &dom.Node{Kind: dom.KindFragment}
}

// BindEvent stamps n with a stable data-live-id attribute and records the
// handler under "id_event". The id serializes with the element, linking
// the rendered markup back to the registry.
func (e *Env) BindEvent(n *dom.Node, event string, handler dom.Handler) {
	if n == nil || handler == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	id := ""
	if v, ok := n.AttrValue("data-live-id"); ok {
		id, _ = v.(string)
	}
	if id == "" {
		e.seq++
		id = fmt.Sprintf("e%d", e.seq)
		n.SetAttr("data-live-id", id)
	}
	e.handlers[id+"_"+event] = handler
}

// Dispatch invokes the handler registered for id and event. It reports
// whether a handler was found; unknown ids and events are logged and
// ignored, never an error.
func (e *Env) Dispatch(id, event, value string) bool {
	e.mu.Lock()
	handler := e.handlers[id+"_"+event]
	e.mu.Unlock()

	if handler == nil {
		e.logger.Warn("no handler for event", "id", id, "event", event)
		return false
	}
	handler(dom.Event{Name: event, Value: value})
	return true
}

// HandlerCount returns the number of registered bindings.
func (e *Env) HandlerCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers)
}
