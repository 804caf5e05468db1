// Package html provides the composable node model and builder functions
// for Velum trees.
//
// A tree is built from ordinary function calls:
//
//	page := html.Div(html.Class("card"),
//	    html.H1("Welcome"),
//	    html.P(html.Style("color", "gray"), "Composable HTML in Go."),
//	)
//
// Builders accept attributes, style declarations, child nodes, components,
// and strings (shorthand for text nodes) in any order. Attribute
// contributions with the same key merge under per-key policies: class
// tokens accumulate without duplicates, boolean attributes follow
// presence/removal, and all other keys are last-write-wins.
//
// Trees are immutable once built and safe to share between renders; all
// mutable rendering state lives in the render package's Context.
package html
