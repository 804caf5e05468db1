package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/velum-dev/velum/pkg/html"
)

// Renderer serializes Node trees to HTML. A Renderer is immutable and safe
// for concurrent use; every render call allocates a fresh Context.
type Renderer struct {
	config Config
}

// New creates a Renderer, failing fast on an invalid configuration.
func New(config Config) (*Renderer, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &Renderer{config: config.withDefaults()}, nil
}

// RenderToString renders a node tree to a fully materialized string.
func (r *Renderer) RenderToString(node *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter renders a node tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *html.Node) error {
	return newContext(r.config).Render(w, node)
}

// RenderDocument renders node as a full document, wrapping it in a
// Document node when it is not one already.
func (r *Renderer) RenderDocument(w io.Writer, node *html.Node) error {
	if node == nil || node.Kind != html.KindDocument {
		node = &html.Node{Kind: html.KindDocument, Children: []*html.Node{node}}
	}
	return r.RenderToWriter(w, node)
}

// renderNode dispatches rendering based on node kind. A nil node is the
// empty node and emits nothing.
func (c *Context) renderNode(w io.Writer, node *html.Node, depth int, indented bool) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case html.KindElement:
		return c.renderElement(w, node, depth, indented)
	case html.KindText:
		return c.renderText(w, node, depth, indented)
	case html.KindGroup:
		return c.renderGroup(w, node, depth, indented)
	case html.KindComponent:
		return c.renderComponent(w, node, depth, indented)
	case html.KindDocument:
		return c.renderDocument(w, node)
	case html.KindRaw:
		return c.renderRaw(w, node)
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement emits an element with its attributes and children.
func (c *Context) renderElement(w io.Writer, node *html.Node, depth int, indented bool) error {
	pretty := c.config.Mode == ModePretty

	if pretty && indented {
		if err := c.writeIndent(w, depth); err != nil {
			return err
		}
	}

	// Opening tag
	if _, err := io.WriteString(w, "<"+node.Tag); err != nil {
		return err
	}
	if err := c.renderAttributes(w, node); err != nil {
		return err
	}

	// Void elements have no closing tag; children are never emitted.
	if node.Void {
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if pretty && indented {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		return c.checkpoint()
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	// Children of an element with block content each go on their own line,
	// one unit deeper; elements with only text/inline content stay on one
	// line with their tags.
	block := pretty && hasBlockChildren(node)
	if block {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	for _, child := range node.Children {
		if err := c.renderNode(w, child, depth+1, block); err != nil {
			return err
		}
	}

	if block {
		if err := c.writeIndent(w, depth); err != nil {
			return err
		}
	}

	// Closing tag
	if _, err := io.WriteString(w, "</"+node.Tag+">"); err != nil {
		return err
	}
	if pretty && (indented || depth == 0) {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return c.checkpoint()
}

// renderText emits a text node with HTML escaping.
func (c *Context) renderText(w io.Writer, node *html.Node, depth int, indented bool) error {
	pretty := c.config.Mode == ModePretty

	if pretty && indented {
		if err := c.writeIndent(w, depth); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, escapeText(node.Text)); err != nil {
		return err
	}
	if pretty && indented {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return c.checkpoint()
}

// renderGroup emits the group's children with no wrapper markup. Children
// inherit the group's depth and layout: output is byte-identical to the
// children rendered directly in the group's place.
func (c *Context) renderGroup(w io.Writer, node *html.Node, depth int, indented bool) error {
	for _, child := range node.Children {
		if err := c.renderNode(w, child, depth, indented); err != nil {
			return err
		}
	}
	return nil
}

// renderComponent forwards to the boxed component's output.
func (c *Context) renderComponent(w io.Writer, node *html.Node, depth int, indented bool) error {
	if node.Comp == nil {
		return nil
	}
	return c.renderNode(w, node.Comp.HTML(), depth, indented)
}

// renderRaw emits raw HTML without escaping.
func (c *Context) renderRaw(w io.Writer, node *html.Node) error {
	if _, err := io.WriteString(w, node.Text); err != nil {
		return err
	}
	return c.checkpoint()
}

// renderAttributes emits attributes in first-insertion order, resolving
// pending style declarations into generated class tokens.
func (c *Context) renderAttributes(w io.Writer, node *html.Node) error {
	// Resolve style declarations against the per-render declaration table,
	// in contribution order.
	var generated []string
	for _, d := range node.Styles {
		generated = append(generated, c.sheet.ClassFor(d))
	}

	wroteClass := false
	for _, a := range node.Attrs {
		if a.Key == "class" {
			wroteClass = true
			class, _ := a.Value.(string)
			class = appendClassTokens(class, generated)
			if err := writeAttr(w, "class", class); err != nil {
				return err
			}
			continue
		}

		if html.IsBooleanAttr(a.Key) {
			if b, ok := a.Value.(bool); ok {
				if b {
					if _, err := io.WriteString(w, " "+a.Key); err != nil {
						return err
					}
				}
				continue
			}
		}

		if err := writeAttr(w, a.Key, attrToString(a.Value)); err != nil {
			return err
		}
	}

	// Elements with styles but no caller class attribute get one appended.
	if !wroteClass && len(generated) > 0 {
		if err := writeAttr(w, "class", strings.Join(generated, " ")); err != nil {
			return err
		}
	}

	return nil
}

// writeAttr emits one key="value" pair with attribute escaping.
func writeAttr(w io.Writer, key, value string) error {
	_, err := io.WriteString(w, " "+key+`="`+escapeAttr(value)+`"`)
	return err
}

// appendClassTokens appends generated tokens not already present.
func appendClassTokens(class string, generated []string) string {
	if len(generated) == 0 {
		return class
	}
	have := strings.Fields(class)
	seen := make(map[string]bool, len(have))
	for _, t := range have {
		seen[t] = true
	}
	out := have
	for _, t := range generated {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return strings.Join(out, " ")
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// hasBlockChildren reports whether the element contains at least one child
// laid out as a block: a non-inline element, or a group/component holding
// one. Text and inline elements render inline.
func hasBlockChildren(node *html.Node) bool {
	for _, child := range node.Children {
		if isBlockNode(child) {
			return true
		}
	}
	return false
}

func isBlockNode(node *html.Node) bool {
	if node == nil {
		return false
	}
	switch node.Kind {
	case html.KindElement:
		return !isInlineElement(node.Tag)
	case html.KindGroup:
		for _, child := range node.Children {
			if isBlockNode(child) {
				return true
			}
		}
		return false
	case html.KindComponent, html.KindDocument:
		return true
	default:
		return false
	}
}

// writeIndent writes indentation for pretty printing.
func (c *Context) writeIndent(w io.Writer, depth int) error {
	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(w, c.config.Indent); err != nil {
			return err
		}
	}
	return nil
}
