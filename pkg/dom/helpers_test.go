package dom

import "testing"

func TestCheckboxPromotesFirstBool(t *testing.T) {
	n := Checkbox(true, Props{"id": "opt"})

	if v, _ := n.AttrValue("type"); v != "checkbox" {
		t.Errorf("got type %v, want checkbox", v)
	}
	if v, ok := n.AttrValue("checked"); !ok || v != true {
		t.Errorf("got checked %v %v, want true", v, ok)
	}
	if v, _ := n.AttrValue("id"); v != "opt" {
		t.Errorf("remaining content not applied: id=%v", v)
	}
	if len(n.Children) != 0 {
		t.Errorf("promoted bool must not become a text child: %v", n.Children)
	}
}

func TestCheckboxWithoutBool(t *testing.T) {
	n := Checkbox(Props{"name": "agree"})

	if _, ok := n.AttrValue("checked"); ok {
		t.Errorf("no bool argument, no checked attribute")
	}
}

func TestNumberBoxPromotesFirstNumber(t *testing.T) {
	n := NumberBox(42, Props{"id": "count"})

	if v, _ := n.AttrValue("type"); v != "number" {
		t.Errorf("got type %v, want number", v)
	}
	if v, _ := n.AttrValue("value"); v != 42 {
		t.Errorf("got value %v, want 42", v)
	}
	if len(n.Children) != 0 {
		t.Errorf("promoted number must not become a text child")
	}
}

func TestTextBoxPromotesFirstString(t *testing.T) {
	n := TextBox("hello", Props{"id": "name"})

	if v, _ := n.AttrValue("type"); v != "text" {
		t.Errorf("got type %v, want text", v)
	}
	if v, _ := n.AttrValue("value"); v != "hello" {
		t.Errorf("got value %v, want hello", v)
	}
}

func TestStylesheetPromotesFirstString(t *testing.T) {
	n := Stylesheet("/site.css")

	if n.Tag != "link" {
		t.Errorf("got tag %q, want link", n.Tag)
	}
	if v, _ := n.AttrValue("rel"); v != "stylesheet" {
		t.Errorf("got rel %v, want stylesheet", v)
	}
	if v, _ := n.AttrValue("href"); v != "/site.css" {
		t.Errorf("got href %v, want /site.css", v)
	}
}

func TestFragmentHelperResolvesContent(t *testing.T) {
	f := Fragment("a", CreateElement("b"))

	if f.Kind != KindFragment {
		t.Fatalf("got kind %v, want Fragment", f.Kind)
	}
	if len(f.Children) != 2 {
		t.Errorf("got %d children, want 2", len(f.Children))
	}
}

func TestPromotionScansOnlyFirstMatch(t *testing.T) {
	n := Checkbox(false, true)

	if v, _ := n.AttrValue("checked"); v != false {
		t.Errorf("got checked %v, want first bool (false)", v)
	}
	// The second bool stays ordinary content.
	if len(n.Children) != 1 || n.Children[0].Text != "true" {
		t.Errorf("second bool should pass through as content: %v", n.Children)
	}
}

func TestTextf(t *testing.T) {
	n := Textf("%d items", 3)
	if n.Text != "3 items" {
		t.Errorf("got %q, want %q", n.Text, "3 items")
	}
}

func TestIfHelper(t *testing.T) {
	if If(false, CreateElement("div")) != nil {
		t.Errorf("If(false) should be nil")
	}
	if If(true, nil) != nil {
		t.Errorf("If(true, nil) should be nil")
	}
}
