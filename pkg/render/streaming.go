package render

import (
	"net/http"

	"github.com/velum-dev/velum/pkg/html"
)

// StreamingRenderer wraps Renderer with HTTP streaming support. Chunks are
// flushed to the client as they are produced for faster time-to-first-byte.
type StreamingRenderer struct {
	*Renderer
}

// NewStreamingRenderer creates a streaming renderer, failing fast on an
// invalid configuration.
func NewStreamingRenderer(config Config) (*StreamingRenderer, error) {
	r, err := New(config)
	if err != nil {
		return nil, err
	}
	return &StreamingRenderer{Renderer: r}, nil
}

// ServeNode renders the node tree to an http.ResponseWriter, flushing each
// chunk as it completes when the writer supports http.Flusher. For a
// Document node the head is delivered ahead of the body for faster first
// paint.
func (s *StreamingRenderer) ServeNode(w http.ResponseWriter, node *html.Node) error {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	flusher, _ := w.(http.Flusher)

	for chunk := range s.Chunks(node) {
		if _, err := w.Write(chunk); err != nil {
			return err
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
	return nil
}
