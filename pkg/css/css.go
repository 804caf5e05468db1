package css

import "strings"

// Declaration is a single atomic style declaration: one property/value pair,
// optionally qualified by a modifier.
type Declaration struct {
	// Property is the CSS property name (e.g., "color").
	Property string

	// Value is the CSS value (e.g., "red").
	Value string

	// Modifier qualifies where the declaration applies. Empty for plain
	// declarations, a pseudo-selector suffix (":hover"), or a media query
	// ("@media (max-width: 600px)").
	Modifier string
}

// Decl creates a plain declaration.
func Decl(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}

// DeclOn creates a declaration qualified by a pseudo-selector or media query.
func DeclOn(modifier, property, value string) Declaration {
	return Declaration{Property: property, Value: value, Modifier: modifier}
}

// IsZero reports whether the declaration is empty.
func (d Declaration) IsZero() bool {
	return d.Property == ""
}

// normalize trims whitespace and lower-cases the property so that
// equivalent declarations share one table entry.
func (d Declaration) normalize() Declaration {
	return Declaration{
		Property: strings.ToLower(strings.TrimSpace(d.Property)),
		Value:    strings.TrimSpace(d.Value),
		Modifier: strings.TrimSpace(d.Modifier),
	}
}

// Key returns the normalized identity of the declaration. Two declarations
// with the same key map to the same generated class within one render.
func (d Declaration) Key() string {
	n := d.normalize()
	if n.Modifier == "" {
		return n.Property + ":" + n.Value
	}
	return n.Property + ":" + n.Value + ";" + n.Modifier
}
