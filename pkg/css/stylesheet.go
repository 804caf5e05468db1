package css

import (
	"io"
	"strconv"
	"strings"
)

// Rule pairs a generated class name with the declaration it carries.
type Rule struct {
	Class       string
	Declaration Declaration
}

// Stylesheet is the per-render declaration table. It assigns one stable
// class name per distinct normalized declaration and remembers rules in
// first-occurrence order.
//
// A Stylesheet is scoped to a single render call and is not safe for
// concurrent writers.
type Stylesheet struct {
	classes map[string]string
	rules   []Rule
	counter uint64
}

// NewStylesheet creates an empty stylesheet.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{
		classes: make(map[string]string),
	}
}

// ClassFor returns the class name for the declaration, inserting it on
// first sight. Class names are "v" followed by a base-36 counter starting
// at 1 (v1, v2, ... v9, va, vb, ...). The reserved "v<base36>" shape is the
// collision contract against caller-supplied class names.
func (s *Stylesheet) ClassFor(d Declaration) string {
	key := d.Key()
	if class, ok := s.classes[key]; ok {
		return class
	}

	s.counter++
	class := "v" + strconv.FormatUint(s.counter, 36)
	s.classes[key] = class
	s.rules = append(s.rules, Rule{Class: class, Declaration: d.normalize()})
	return class
}

// Len returns the number of distinct rules collected so far.
func (s *Stylesheet) Len() int {
	return len(s.rules)
}

// Empty reports whether no declarations were collected.
func (s *Stylesheet) Empty() bool {
	return len(s.rules) == 0
}

// Rules returns the collected rules in first-occurrence order.
// The returned slice is owned by the stylesheet and must not be modified.
func (s *Stylesheet) Rules() []Rule {
	return s.rules
}

// String returns the serialized stylesheet.
func (s *Stylesheet) String() string {
	var b strings.Builder
	s.WriteTo(&b)
	return b.String()
}

// WriteTo serializes every rule, in first-occurrence order, as compact CSS:
//
//	.v1{color:red}
//	.v2:hover{color:blue}
//	@media (max-width: 600px){.v3{display:none}}
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, rule := range s.rules {
		n, err := io.WriteString(w, serializeRule(rule))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// serializeRule renders a single rule. Media-query modifiers wrap the rule;
// any other modifier is appended to the class selector.
func serializeRule(rule Rule) string {
	d := rule.Declaration
	body := "." + rule.Class + d.selectorSuffix() + "{" + d.Property + ":" + d.Value + "}"
	if strings.HasPrefix(d.Modifier, "@") {
		return d.Modifier + "{" + "." + rule.Class + "{" + d.Property + ":" + d.Value + "}" + "}"
	}
	return body
}

// selectorSuffix returns the selector suffix for non-media modifiers.
func (d Declaration) selectorSuffix() string {
	if d.Modifier == "" || strings.HasPrefix(d.Modifier, "@") {
		return ""
	}
	return d.Modifier
}
