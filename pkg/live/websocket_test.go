package live

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/markup-go/markup/pkg/dom"
)

func TestWebSocketDispatch(t *testing.T) {
	env := New(nil)
	n := env.CreateElement("button")

	var got dom.Event
	env.BindEvent(n, "click", func(e dom.Event) { got = e })

	srv := httptest.NewServer(Handler(env, nil))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	frame := eventFrame{ID: "e1", Event: "click", Value: "42"}
	if err := conn.WriteJSON(frame); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var ack ackFrame
	if err := conn.ReadJSON(&ack); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !ack.OK || ack.ID != "e1" || ack.Event != "click" {
		t.Errorf("got ack %+v, want ok for e1/click", ack)
	}
	if got.Value != "42" {
		t.Errorf("handler saw %+v, want value 42", got)
	}
}

func TestWebSocketUnknownEventAcksFalse(t *testing.T) {
	env := New(nil)

	srv := httptest.NewServer(Handler(env, nil))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(eventFrame{ID: "nope", Event: "click"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var ack ackFrame
	if err := conn.ReadJSON(&ack); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if ack.OK {
		t.Errorf("unknown binding should ack ok=false")
	}
}
