// Package web integrates the markup builder with an HTTP response
// pipeline.
//
// Adapt wraps a loosely-typed handler: when the handler returns a
// *dom.Node the node is serialized to markup before the response
// continues downstream; other payloads pass through unchanged (strings as
// plain text, everything else as JSON). This is the only place
// serialization happens implicitly.
//
// NewRouter builds a chi router pre-wired with slog request logging,
// Prometheus metrics and OpenTelemetry tracing middleware.
package web
