// Package serve runs a development and production HTTP server for a
// velum site.
//
// Each registered page is mounted as a GET route and streamed to the
// client chunk by chunk. The server also exposes /healthz, an optional
// /metrics endpoint backed by Prometheus, and an optional /livereload
// WebSocket used by the velum CLI during development.
package serve
