package dom

import "log/slog"

// Event carries the payload delivered to an event binding.
type Event struct {
	Name  string // event name without the "on" prefix, e.g. "click"
	Value string // environment-supplied payload, e.g. an input value
}

// Handler is an event callback.
type Handler func(Event)

// Environment supplies the node-creation and event capabilities of the
// hosting runtime. The core never probes for capabilities per call; one
// implementation is selected at process start via SetEnvironment.
type Environment interface {
	CreateElement(tag string) *Node
	CreateText(text string) *Node
	CreateFragment() *Node

	// BindEvent registers handler for the named event on n. Environments
	// without live event support must not fail here: the binding is
	// reported and dropped, and tree construction continues.
	BindEvent(n *Node, event string, handler Handler)
}

// virtualEnv builds plain in-memory nodes and has no event loop to attach
// handlers to.
type virtualEnv struct {
	logger *slog.Logger
}

// Virtual returns the default environment. It constructs the node model
// directly and drops event bindings with a logged warning. A nil logger
// falls back to slog.Default.
func Virtual(logger *slog.Logger) Environment {
	return &virtualEnv{logger: logger}
}

func (e *virtualEnv) CreateElement(tag string) *Node {
	return &Node{Kind: KindElement, Tag: tag}
}

func (e *virtualEnv) CreateText(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

func (e *virtualEnv) CreateFragment() *Node {
	return &Node{Kind: KindFragment}
}

func (e *virtualEnv) BindEvent(n *Node, event string, handler Handler) {
	logger := e.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("event binding dropped: environment has no event support",
		"tag", n.Tag, "event", event)
}

// env is the process-wide environment. Written once at startup, read by
// every builder call afterwards.
var env Environment = Virtual(nil)

// SetEnvironment selects the active environment and returns the previous
// one. Call it once at process start, before building any trees. A nil
// argument restores the default virtual environment.
func SetEnvironment(e Environment) Environment {
	prev := env
	if e == nil {
		e = Virtual(nil)
	}
	env = e
	return prev
}
