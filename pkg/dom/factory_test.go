package dom

import (
	"errors"
	"testing"
)

func TestTagBuildsNormalizedElement(t *testing.T) {
	n := Tag("DIV")("hello")

	if n.Tag != "div" {
		t.Errorf("got tag %q, want %q", n.Tag, "div")
	}
	if len(n.Children) != 1 || n.Children[0].Text != "hello" {
		t.Errorf("builder lost content: %v", n.Children)
	}
}

func TestTagCustomNamesAreConstructible(t *testing.T) {
	n := Tag("my_widget")()

	if n.Tag != "my-widget" {
		t.Errorf("got tag %q, want %q", n.Tag, "my-widget")
	}
}

func TestTagMemoizesBuilders(t *testing.T) {
	Tag("memo_probe")

	factoryMu.RLock()
	_, cached := factories["memo-probe"]
	factoryMu.RUnlock()

	if !cached {
		t.Errorf("builder for memo-probe should be cached after first access")
	}
}

func TestRegisterRejectsOverwrite(t *testing.T) {
	if err := Register("register_probe", nil); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	err := Register("register_probe", func(content ...any) *Node {
		return CreateElement("div")
	})
	if !errors.Is(err, ErrTagRegistered) {
		t.Fatalf("got %v, want ErrTagRegistered", err)
	}

	// The original entry must be untouched.
	if n := Tag("register_probe")(); n.Tag != "register-probe" {
		t.Errorf("overwrite attempt mutated the cache: got tag %q", n.Tag)
	}
}

func TestRegisterRejectsKnownTagOverwrite(t *testing.T) {
	err := Register("div", nil)
	if !errors.Is(err, ErrTagRegistered) {
		t.Errorf("got %v, want ErrTagRegistered for pre-populated tag", err)
	}
}

func TestRegisterCustomBuilder(t *testing.T) {
	err := Register("card_probe", func(content ...any) *Node {
		return CreateElement("div", Class("card"), content)
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	n := Tag("card_probe")("body")
	if n.Tag != "div" || !n.HasClass("card") {
		t.Errorf("custom builder not used: %q %v", n.Tag, n.Classes)
	}
}
