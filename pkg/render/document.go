package render

import (
	"bytes"
	"io"

	"github.com/velum-dev/velum/pkg/html"
)

// renderDocument emits a full HTML document. The body is rendered first into
// a buffer so the stylesheet accumulated during that pass can be injected
// into the head, then the document shell is written around it.
func (c *Context) renderDocument(w io.Writer, node *html.Node) error {
	pretty := c.config.Mode == ModePretty

	// Pass 1: body content. The chunk sink is suspended so no body bytes
	// reach the consumer before the head.
	var body bytes.Buffer
	cw := c.cw
	c.cw = nil
	for _, child := range node.Children {
		if err := c.renderNode(&body, child, 2, pretty); err != nil {
			c.cw = cw
			return err
		}
	}
	c.cw = cw

	// Pass 2: document shell with the collected stylesheet.
	nl := ""
	if pretty {
		nl = "\n"
	}

	if _, err := io.WriteString(w, "<!doctype html>"+nl); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<html"); err != nil {
		return err
	}
	if err := c.renderAttributes(w, node); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"+nl); err != nil {
		return err
	}

	if err := c.writeHead(w, pretty); err != nil {
		return err
	}

	if pretty {
		if err := c.writeIndent(w, 1); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "<body>"+nl); err != nil {
		return err
	}

	// The head is complete at this point, so it may be delivered ahead of
	// the body.
	if err := c.flush(); err != nil {
		return err
	}

	if err := c.writeBody(w, body.Bytes()); err != nil {
		return err
	}

	if pretty {
		if err := c.writeIndent(w, 1); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</body>"+nl); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "</html>"+nl); err != nil {
		return err
	}

	return c.checkpoint()
}

// writeHead emits the head with charset metadata and the per-render
// stylesheet. An empty stylesheet emits no style element.
func (c *Context) writeHead(w io.Writer, pretty bool) error {
	nl := ""
	if pretty {
		nl = "\n"
	}

	indent := func(depth int) error {
		if !pretty {
			return nil
		}
		return c.writeIndent(w, depth)
	}

	if err := indent(1); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<head>"+nl); err != nil {
		return err
	}

	if err := indent(2); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<meta charset="utf-8">`+nl); err != nil {
		return err
	}

	if !c.sheet.Empty() {
		if err := indent(2); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<style>"+c.sheet.String()+"</style>"+nl); err != nil {
			return err
		}
	}

	if err := indent(1); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "</head>"+nl); err != nil {
		return err
	}
	return nil
}

// writeBody emits the buffered body bytes. On the chunked path the buffer
// is delivered in chunk-sized slices so a large body still yields
// cooperatively.
func (c *Context) writeBody(w io.Writer, body []byte) error {
	if c.cw == nil {
		_, err := w.Write(body)
		return err
	}
	for len(body) > 0 {
		n := len(body)
		if n > c.config.ChunkSize {
			n = c.config.ChunkSize
		}
		if _, err := w.Write(body[:n]); err != nil {
			return err
		}
		body = body[n:]
		if err := c.checkpoint(); err != nil {
			return err
		}
	}
	return nil
}
