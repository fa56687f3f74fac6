// Package live provides an event-capable environment for the dom builder.
//
// Bindings registered while a tree is under construction are kept in a
// registry keyed by a data-live-id attribute stamped onto the element.
// Handler returns an http.Handler that upgrades to WebSocket and
// dispatches client-reported events to the registered callbacks.
//
//	env := live.New(nil)
//	dom.SetEnvironment(env)
//
//	page := dom.Div(dom.Button("Save", dom.OnClick(save)))
//	mux.Handle("/live", live.Handler(env, nil))
package live
