// Package render converts html.Node trees into HTML output.
//
// The package handles all aspects of producing valid, secure HTML
// including:
//
//   - HTML5 compliant element rendering
//   - Proper text and attribute escaping (XSS prevention)
//   - Void element handling (input, br, img, etc.)
//   - Boolean attribute handling (disabled, checked, etc.)
//   - Style declaration resolution into deduplicated atomic classes
//   - Full document rendering with doctype, head, and injected stylesheet
//   - Compact and pretty output modes with identical markup
//
// # Basic Usage
//
// To render a node tree to a string:
//
//	r, err := render.New(render.Config{})
//	out, err := r.RenderToString(node)
//
// To render to a writer:
//
//	err := r.RenderToWriter(w, node)
//
// # Chunked Output
//
// Chunks produces the same bytes as the synchronous path, delivered as a
// pull-driven sequence that yields at node boundaries:
//
//	for chunk := range r.Chunks(node) {
//	    w.Write(chunk)
//	}
//
// The consumer may stop iterating at any point; the render is abandoned
// with no goroutines or buffers left behind.
//
// # Documents
//
// A tree rooted at html.Document renders in two passes: the body first,
// collecting every style declaration into the per-render stylesheet, then
// the document shell with the stylesheet injected into the head. On the
// chunked path the completed head is delivered before any body bytes.
package render
