package html

import "strings"

// voidElements are elements that cannot have children and have no closing
// tag. These are self-closing in HTML5.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// booleanAttrs are attributes governed by the boolean-presence merge
// policy: presence of a truthy set wins, a later explicit false removes the
// attribute, and they serialize as the bare attribute name.
var booleanAttrs = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"hidden":          true,
	"ismap":           true,
	"itemscope":       true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"nomodule":        true,
	"novalidate":      true,
	"open":            true,
	"playsinline":     true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

// IsBooleanAttr returns true if the attribute follows the boolean-presence
// merge policy.
func IsBooleanAttr(name string) bool {
	return booleanAttrs[name]
}

// mergeAttr folds one attribute contribution into the insertion-ordered
// attribute list, applying the per-key merge policy:
//
//   - class: append-unique-token — new space-separated tokens are appended,
//     skipping tokens already present; order is first-seen.
//   - boolean attributes: presence wins; an explicit false removes.
//   - everything else: last-write-wins, keeping the key's original position.
func mergeAttr(attrs []Attr, key string, value any) []Attr {
	switch {
	case key == "class":
		return mergeClass(attrs, value)

	case IsBooleanAttr(key):
		present := true
		if b, ok := value.(bool); ok {
			present = b
		}
		for i, a := range attrs {
			if a.Key == key {
				if !present {
					return append(attrs[:i], attrs[i+1:]...)
				}
				return attrs
			}
		}
		if !present {
			return attrs
		}
		return append(attrs, Attr{Key: key, Value: true})

	default:
		for i, a := range attrs {
			if a.Key == key {
				attrs[i].Value = value
				return attrs
			}
		}
		return append(attrs, Attr{Key: key, Value: value})
	}
}

// mergeClass appends the value's space-separated tokens to the existing
// class attribute, skipping duplicates.
func mergeClass(attrs []Attr, value any) []Attr {
	s, ok := value.(string)
	if !ok {
		return attrs
	}
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return attrs
	}

	for i, a := range attrs {
		if a.Key == "class" {
			existing, _ := a.Value.(string)
			attrs[i].Value = appendUniqueTokens(existing, tokens)
			return attrs
		}
	}
	return append(attrs, Attr{Key: "class", Value: appendUniqueTokens("", tokens)})
}

// appendUniqueTokens appends tokens not already present, preserving
// first-seen order.
func appendUniqueTokens(existing string, tokens []string) string {
	have := strings.Fields(existing)
	seen := make(map[string]bool, len(have)+len(tokens))
	for _, t := range have {
		seen[t] = true
	}

	out := have
	for _, t := range tokens {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return strings.Join(out, " ")
}
