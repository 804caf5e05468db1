package html

import (
	"fmt"

	"github.com/velum-dev/velum/pkg/css"
)

// Text creates a text node. Content is escaped on emission.
func Text(content string) *Node {
	return &Node{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *Node {
	return &Node{
		Kind: KindRaw,
		Text: html,
	}
}

// Empty returns the empty node. It renders to zero bytes and is the
// identity for composition.
func Empty() *Node {
	return nil
}

// Group groups children without wrapper markup: rendering Group(a, b) is
// byte-identical to rendering a then b. Arguments follow the same rules as
// element builders, except attributes are not accepted.
func Group(children ...any) *Node {
	node := &Node{Kind: KindGroup}

	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *Node:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*Node:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		case Component:
			node.Children = append(node.Children, &Node{
				Kind: KindComponent,
				Comp: v,
			})
		}
	}

	return node
}

// Document wraps body content in the full-page skeleton. The renderer
// emits <!doctype html>, an <html> element carrying any Attr arguments,
// a <head> holding the collected stylesheet, and the children inside
// <body>.
func Document(args ...any) *Node {
	el := createElement("", args)
	return &Node{
		Kind:     KindDocument,
		Attrs:    el.Attrs,
		Children: el.Children,
	}
}

// ForEach renders a sequence: one node per item, grouped transparently.
// An empty or nil slice produces the empty node.
func ForEach[T any](items []T, fn func(item T, index int) *Node) *Node {
	node := &Node{Kind: KindGroup}
	for i, item := range items {
		if child := fn(item, i); child != nil {
			node.Children = append(node.Children, child)
		}
	}
	return node
}

// Repeat creates n nodes using the given function, grouped transparently.
func Repeat(n int, fn func(i int) *Node) *Node {
	node := &Node{Kind: KindGroup}
	for i := 0; i < n; i++ {
		if child := fn(i); child != nil {
			node.Children = append(node.Children, child)
		}
	}
	return node
}

// If returns the node if condition is true, the empty node otherwise.
func If(condition bool, node *Node) *Node {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Node) *Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *Node) *Node {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
func Unless(condition bool, node *Node) *Node {
	if !condition {
		return node
	}
	return nil
}

// Style attaches an atomic style declaration to an element. The renderer
// funnels it through the per-render declaration table and references the
// generated utility class from the element's class attribute.
func Style(property, value string) css.Declaration {
	return css.Decl(property, value)
}

// StyleOn attaches a declaration qualified by a pseudo-selector suffix
// (":hover") or media query ("@media (max-width: 600px)").
func StyleOn(modifier, property, value string) css.Declaration {
	return css.DeclOn(modifier, property, value)
}
