package render

import (
	"bytes"
	goerrors "errors"
	"iter"

	"github.com/velum-dev/velum/pkg/html"
)

// errStopped signals that the chunk consumer stopped iterating. It aborts
// the render without surfacing to callers.
var errStopped = goerrors.New("render: chunk consumer stopped")

// Chunks renders the node tree as a sequence of byte chunks. The sequence
// is pull-driven: no work happens until the consumer iterates, and an
// abandoned sequence leaks nothing. Chunk boundaries fall only between
// complete nodes, at or after the configured chunk size; the concatenation
// of all chunks is byte-identical to RenderToString output. Each iteration
// of the returned sequence performs a fresh render.
func (r *Renderer) Chunks(node *html.Node) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		c := newContext(r.config)
		cw := &chunkWriter{yield: yield, limit: c.config.ChunkSize}
		c.cw = cw

		// A top-level group gets a flush after each child, so page
		// sections reach the consumer as soon as they complete.
		if node != nil && node.Kind == html.KindGroup {
			c.consumed = true
			for _, child := range node.Children {
				if err := c.renderNode(cw, child, 0, false); err != nil {
					return
				}
				if err := cw.flush(); err != nil {
					return
				}
			}
			return
		}

		if err := c.Render(cw, node); err != nil {
			return
		}
		_ = cw.flush()
	}
}

// chunkWriter accumulates output and hands completed chunks to the
// consumer. Flushing happens only at checkpoints, so every chunk ends on
// a node boundary.
type chunkWriter struct {
	buf     bytes.Buffer
	yield   func([]byte) bool
	limit   int
	stopped bool
}

func (cw *chunkWriter) Write(p []byte) (int, error) {
	if cw.stopped {
		return 0, errStopped
	}
	return cw.buf.Write(p)
}

// checkpoint flushes if the buffer has reached the chunk size. Called after
// each completed node, which is the only safe boundary.
func (cw *chunkWriter) checkpoint() error {
	if cw.stopped {
		return errStopped
	}
	if cw.buf.Len() >= cw.limit {
		return cw.flush()
	}
	return nil
}

// flush hands the buffered bytes to the consumer regardless of size.
func (cw *chunkWriter) flush() error {
	if cw.stopped {
		return errStopped
	}
	if cw.buf.Len() == 0 {
		return nil
	}
	chunk := make([]byte, cw.buf.Len())
	copy(chunk, cw.buf.Bytes())
	cw.buf.Reset()
	if !cw.yield(chunk) {
		cw.stopped = true
		return errStopped
	}
	return nil
}

// checkpoint is a no-op on the synchronous path.
func (c *Context) checkpoint() error {
	if c.cw == nil {
		return nil
	}
	return c.cw.checkpoint()
}

// flush forces out any buffered bytes on the chunked path.
func (c *Context) flush() error {
	if c.cw == nil {
		return nil
	}
	return c.cw.flush()
}
