package web

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/markup-go/markup/pkg/dom"
	"github.com/markup-go/markup/pkg/render"
)

// HandlerFunc is a loosely-typed request handler whose return value is
// serialized by Adapt.
type HandlerFunc func(r *http.Request) any

// Adapt wraps h into an http.HandlerFunc. Return values are handled by
// shape:
//
//   - *dom.Node: rendered to markup with default (compact) serialization
//     and written as text/html
//   - string: written as text/plain
//   - error: logged and reported as a 500
//   - nil: 204 No Content
//   - anything else: JSON-encoded
func Adapt(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch v := h(r).(type) {
		case nil:
			w.WriteHeader(http.StatusNoContent)

		case *dom.Node:
			html, err := render.String(v)
			if err != nil {
				slog.Error("render failed", "path", r.URL.Path, "error", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			io.WriteString(w, html)

		case string:
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			io.WriteString(w, v)

		case error:
			slog.Error("handler failed", "path", r.URL.Path, "error", v)
			http.Error(w, "internal server error", http.StatusInternalServerError)

		default:
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(v); err != nil {
				slog.Error("encode failed", "path", r.URL.Path, "error", err)
			}
		}
	}
}
