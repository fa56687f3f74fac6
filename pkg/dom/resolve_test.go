package dom

import (
	"testing"
)

// recordEnv captures event bindings while delegating node creation to the
// virtual environment.
type recordEnv struct {
	Environment
	bindings []recordedBinding
}

type recordedBinding struct {
	node  *Node
	event string
}

func newRecordEnv() *recordEnv {
	return &recordEnv{Environment: Virtual(nil)}
}

func (e *recordEnv) BindEvent(n *Node, event string, handler Handler) {
	e.bindings = append(e.bindings, recordedBinding{node: n, event: event})
}

func withEnv(t *testing.T, e Environment) {
	t.Helper()
	prev := SetEnvironment(e)
	t.Cleanup(func() { SetEnvironment(prev) })
}

func TestResolveScalars(t *testing.T) {
	n := CreateElement("p", "hello", 42, true, 3.5)

	want := []string{"hello", "42", "true", "3.5"}
	if len(n.Children) != len(want) {
		t.Fatalf("got %d children, want %d", len(n.Children), len(want))
	}
	for i, w := range want {
		if n.Children[i].Kind != KindText || n.Children[i].Text != w {
			t.Errorf("child %d: got %v %q, want text %q",
				i, n.Children[i].Kind, n.Children[i].Text, w)
		}
	}
}

func TestResolveNilIsNoopAtEveryLevel(t *testing.T) {
	n := CreateElement("div", nil, []any{nil, []any{nil}}, nil)

	if len(n.Children) != 0 {
		t.Errorf("got %d children, want 0", len(n.Children))
	}
}

func TestResolveFlatteningIsAssociative(t *testing.T) {
	a := func() *Node { return CreateElement("em", "a") }
	b := func() *Node { return CreateElement("em", "b") }
	c := func() *Node { return CreateElement("em", "c") }

	nested := CreateElement("div", []any{a(), []any{b(), c()}})
	flat := CreateElement("div", a(), b(), c())

	if len(nested.Children) != len(flat.Children) {
		t.Fatalf("got %d children, want %d", len(nested.Children), len(flat.Children))
	}
	for i := range flat.Children {
		if nested.Children[i].Children[0].Text != flat.Children[i].Children[0].Text {
			t.Errorf("child %d differs between nested and flat content", i)
		}
	}
}

func TestResolveUnknownShapesAreSilent(t *testing.T) {
	type odd struct{ X int }

	// Must not panic and must not add anything.
	n := CreateElement("div", odd{X: 1}, make(chan int), func(s string) {})

	if len(n.Children) != 0 {
		t.Errorf("got %d children, want 0", len(n.Children))
	}
}

func TestResolveCallableAsDirectContentIsIgnored(t *testing.T) {
	n := CreateElement("div", func() {})

	if len(n.Children) != 0 {
		t.Errorf("callable content should be inert, got %d children", len(n.Children))
	}
}

func TestResolvePropsAttribute(t *testing.T) {
	n := CreateElement("div", Props{"data_foo": "bar"})

	v, ok := n.AttrValue("data-foo")
	if !ok || v != "bar" {
		t.Errorf("got %v %v, want data-foo=bar", v, ok)
	}
}

func TestResolvePropsClassSplitsOnSpaceAndDot(t *testing.T) {
	tests := []struct {
		value string
		want  []string
	}{
		{"a.b c", []string{"a", "b", "c"}},
		{"single", []string{"single"}},
		{"..a..", []string{"a"}},
		{"", nil},
	}

	for _, tt := range tests {
		n := CreateElement("div", Props{"class": tt.value})
		if len(n.Classes) != len(tt.want) {
			t.Errorf("class %q: got %v, want %v", tt.value, n.Classes, tt.want)
			continue
		}
		for i, w := range tt.want {
			if n.Classes[i] != w {
				t.Errorf("class %q: got %v, want %v", tt.value, n.Classes, tt.want)
			}
		}
	}
}

func TestResolvePropsContentKeyRecurses(t *testing.T) {
	n := CreateElement("div", Props{
		"id":      "box",
		"content": []any{"first", CreateElement("span", "second")},
	})

	if v, _ := n.AttrValue("id"); v != "box" {
		t.Errorf("attribute lost next to content key: %v", v)
	}
	if len(n.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(n.Children))
	}
	if n.Children[0].Text != "first" || n.Children[1].Tag != "span" {
		t.Errorf("content key children wrong: %v", n.Children)
	}
}

func TestResolvePropsStyleMap(t *testing.T) {
	n := CreateElement("div", Props{
		"style": Props{"font_size": "14px", "color": "red", "border": ""},
	})

	v, ok := n.AttrValue("style")
	if !ok {
		t.Fatalf("style attribute missing")
	}
	if v != "color:red;font-size:14px;" {
		t.Errorf("got style %q, want %q", v, "color:red;font-size:14px;")
	}
}

func TestResolvePropsStyleFalsyOmitsAttribute(t *testing.T) {
	n := CreateElement("div", Props{"style": nil})

	if _, ok := n.AttrValue("style"); ok {
		t.Errorf("falsy style should emit no attribute")
	}
}

func TestResolvePropsEventBinding(t *testing.T) {
	rec := newRecordEnv()
	withEnv(t, rec)

	n := CreateElement("button", Props{"on_click": func() {}})

	if len(rec.bindings) != 1 {
		t.Fatalf("got %d bindings, want 1", len(rec.bindings))
	}
	if rec.bindings[0].event != "click" {
		t.Errorf("got event %q, want %q", rec.bindings[0].event, "click")
	}
	if rec.bindings[0].node != n {
		t.Errorf("binding attached to wrong node")
	}
	if _, ok := n.AttrValue("on-click"); ok {
		t.Errorf("event binding should not become an attribute")
	}
}

func TestResolveEventKeyWithoutPrefix(t *testing.T) {
	rec := newRecordEnv()
	withEnv(t, rec)

	CreateElement("input", Props{"change": func(Event) {}})

	if len(rec.bindings) != 1 || rec.bindings[0].event != "change" {
		t.Fatalf("got %v, want one change binding", rec.bindings)
	}
}

func TestResolveNonMatchingEventKeyIsDiscarded(t *testing.T) {
	rec := newRecordEnv()
	withEnv(t, rec)

	// Normalized key contains a hyphen inside the word sequence, so it
	// does not match the event-name pattern. No binding, no attribute,
	// no error.
	n := CreateElement("div", Props{"data_ready": func() {}})

	if len(rec.bindings) != 0 {
		t.Errorf("got %d bindings, want 0", len(rec.bindings))
	}
	if len(n.Attrs) != 0 {
		t.Errorf("discarded binding should not become an attribute: %v", n.Attrs)
	}
}

func TestResolveEventOnVirtualEnvironmentDoesNotFail(t *testing.T) {
	// The default environment has no event support; the binding is
	// reported and dropped, and construction continues.
	n := CreateElement("button", Props{"onclick": func() {}}, "label")

	if len(n.Children) != 1 || n.Children[0].Text != "label" {
		t.Errorf("tree build should continue after dropped binding: %v", n.Children)
	}
}

func TestResolveEventHandlerContentShape(t *testing.T) {
	rec := newRecordEnv()
	withEnv(t, rec)

	CreateElement("button", OnClick(func(e Event) {}))

	if len(rec.bindings) != 1 || rec.bindings[0].event != "click" {
		t.Fatalf("got %v, want one click binding", rec.bindings)
	}
}

func TestResolveMixedContentSequence(t *testing.T) {
	// Number, nil and an attribute map applied in sequence must each
	// take their documented effect independently.
	n := CreateElement("div")
	Apply(n, 42)
	Apply(n, nil)
	Apply(n, Props{"foo": "bar"})

	if len(n.Children) != 1 || n.Children[0].Text != "42" {
		t.Errorf("scalar content lost: %v", n.Children)
	}
	if v, _ := n.AttrValue("foo"); v != "bar" {
		t.Errorf("attribute lost: %v", v)
	}
}

func TestResolveAttrShapeRoutesThroughDispatch(t *testing.T) {
	n := CreateElement("div", Class("a.b", "c"), ID("main"))

	if len(n.Classes) != 3 {
		t.Errorf("got classes %v, want [a b c]", n.Classes)
	}
	if v, _ := n.AttrValue("id"); v != "main" {
		t.Errorf("got id %v, want main", v)
	}
}

func TestResolveStringSliceContent(t *testing.T) {
	n := CreateElement("p", []string{"a", "b"})

	if len(n.Children) != 2 || n.Children[1].Text != "b" {
		t.Errorf("got %v, want two text children", n.Children)
	}
}
