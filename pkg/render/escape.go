package render

import "strings"

// HTML character-entity byte sequences used by the escaping step. Exported
// so collaborators can reuse identical encodings.
const (
	EntityAmp  = "&amp;"
	EntityLT   = "&lt;"
	EntityGT   = "&gt;"
	EntityQuot = "&quot;"
	EntityApos = "&#39;"
)

// escapeText escapes character data for safe inclusion in HTML content.
func escapeText(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString(EntityAmp)
		case '<':
			buf.WriteString(EntityLT)
		case '>':
			buf.WriteString(EntityGT)
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttr escapes text for safe inclusion in HTML attribute values.
// In addition to the text entities it escapes both quote characters.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString(EntityAmp)
		case '<':
			buf.WriteString(EntityLT)
		case '>':
			buf.WriteString(EntityGT)
		case '"':
			buf.WriteString(EntityQuot)
		case '\'':
			buf.WriteString(EntityApos)
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
