package html

import "github.com/velum-dev/velum/pkg/css"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <a>, etc.
	KindText                 // Escaped character data
	KindGroup                // Transparent grouping without wrapper markup
	KindComponent            // Type-erased box around a Component
	KindDocument             // Full-page wrapper owning the head/body skeleton
	KindRaw                  // Unescaped passthrough (dangerous)
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindGroup:
		return "Group"
	case KindComponent:
		return "Component"
	case KindDocument:
		return "Document"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Node is one element of the renderable tree. A nil *Node is the empty
// node: it renders to zero bytes and is the identity for composition.
//
// Nodes are immutable once constructed; rendering never mutates the tree,
// so a node may safely be shared between parents and rendered many times.
type Node struct {
	Kind     Kind
	Tag      string            // Element tag name (e.g., "div")
	Attrs    []Attr            // Attributes in first-insertion order
	Styles   []css.Declaration // Atomic style declarations, in contribution order
	Children []*Node           // Child nodes
	Text     string            // For KindText and KindRaw
	Void     bool              // Element has no closing tag and no children
	Comp     Component         // For KindComponent
}

// Attr is a single attribute. Value is a string for regular attributes,
// a bool for boolean attributes, or any stringable value.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Component is anything that can produce a Node. It is the type-erased
// wrapper of the node model: the renderer forwards to HTML() and adds no
// markup of its own.
type Component interface {
	HTML() *Node
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	html func() *Node
}

// HTML implements Component.
func (f *FuncComponent) HTML() *Node {
	return f.html()
}

// Func creates a component from a render function.
func Func(html func() *Node) Component {
	return &FuncComponent{html: html}
}
