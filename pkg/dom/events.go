package dom

// EventHandler pairs an event name with a callable. The name is stored
// without the "on" prefix; the callable may be a Handler, func(Event) or
// func().
type EventHandler struct {
	Event   string
	Handler any
}

// On creates an event binding for an arbitrary event name. The name is
// normalized like any other key.
func On(name string, handler any) EventHandler {
	return EventHandler{Event: normalizeKey(name), Handler: handler}
}

// Mouse events

func OnClick(handler any) EventHandler    { return On("click", handler) }
func OnDblClick(handler any) EventHandler { return On("dblclick", handler) }
func OnMouseDown(handler any) EventHandler {
	return On("mousedown", handler)
}
func OnMouseUp(handler any) EventHandler { return On("mouseup", handler) }

// Keyboard events

func OnKeyDown(handler any) EventHandler { return On("keydown", handler) }
func OnKeyUp(handler any) EventHandler   { return On("keyup", handler) }

// Form events

func OnInput(handler any) EventHandler  { return On("input", handler) }
func OnChange(handler any) EventHandler { return On("change", handler) }
func OnSubmit(handler any) EventHandler { return On("submit", handler) }
func OnFocus(handler any) EventHandler  { return On("focus", handler) }
func OnBlur(handler any) EventHandler   { return On("blur", handler) }
