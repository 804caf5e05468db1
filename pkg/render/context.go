package render

import (
	"io"

	"github.com/velum-dev/velum/internal/errors"
	"github.com/velum-dev/velum/pkg/css"
	"github.com/velum-dev/velum/pkg/html"
)

// Context carries the mutable state of one render call: the configuration,
// the per-render declaration table, and the chunk sink when the chunked
// path is active. A Context serves exactly one render and is then consumed;
// concurrent renders must each allocate their own.
type Context struct {
	config   Config
	sheet    *css.Stylesheet
	cw       *chunkWriter
	consumed bool
}

// NewContext creates a fresh Context, failing fast on an invalid
// configuration.
func NewContext(config Config) (*Context, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return newContext(config), nil
}

// newContext skips validation for configs already validated by a Renderer.
func newContext(config Config) *Context {
	return &Context{
		config: config.withDefaults(),
		sheet:  css.NewStylesheet(),
	}
}

// Stylesheet returns the declaration table accumulated by this render.
func (c *Context) Stylesheet() *css.Stylesheet {
	return c.sheet
}

// Render serializes the node tree into w. It returns an error if the
// Context was already consumed by a prior render.
func (c *Context) Render(w io.Writer, node *html.Node) error {
	if c.consumed {
		return errors.New("E102").
			WithSuggestion("allocate a new Context with render.NewContext for each render call")
	}
	c.consumed = true
	return c.renderNode(w, node, 0, false)
}
