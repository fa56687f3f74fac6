package live

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// eventFrame is the wire format for client-reported events.
type eventFrame struct {
	ID    string `json:"id"`
	Event string `json:"event"`
	Value string `json:"value,omitempty"`
}

// ackFrame acknowledges a dispatched event.
type ackFrame struct {
	ID    string `json:"id"`
	Event string `json:"event"`
	OK    bool   `json:"ok"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Handler returns an http.Handler that upgrades to WebSocket and
// dispatches incoming event frames against env. Each frame is
// acknowledged with an ok flag; malformed frames close the connection.
func Handler(env *Env, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error("websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close()

		for {
			var frame eventFrame
			if err := conn.ReadJSON(&frame); err != nil {
				if websocket.IsUnexpectedCloseError(err,
					websocket.CloseGoingAway,
					websocket.CloseAbnormalClosure,
					websocket.CloseNormalClosure) {
					logger.Error("websocket read error", "error", err)
				}
				return
			}

			ok := env.Dispatch(frame.ID, frame.Event, frame.Value)
			ack := ackFrame{ID: frame.ID, Event: frame.Event, OK: ok}
			if err := conn.WriteJSON(ack); err != nil {
				logger.Error("websocket write error", "error", err)
				return
			}
		}
	})
}
