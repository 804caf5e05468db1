package render

import "testing"

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "hello", want: "hello"},
		{name: "ampersand", input: "a & b", want: "a &amp; b"},
		{name: "angle brackets", input: "<div>", want: "&lt;div&gt;"},
		{name: "quotes untouched", input: `"a" and 'b'`, want: `"a" and 'b'`},
		{name: "mixed", input: "1 < 2 && 3 > 2", want: "1 &lt; 2 &amp;&amp; 3 &gt; 2"},
		{name: "unicode", input: "café ☕", want: "café ☕"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeText(tt.input); got != tt.want {
				t.Errorf("escapeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "hello", want: "hello"},
		{name: "double quote", input: `say "hi"`, want: "say &quot;hi&quot;"},
		{name: "single quote", input: "it's", want: "it&#39;s"},
		{name: "ampersand", input: "a&b", want: "a&amp;b"},
		{name: "angle brackets", input: "<x>", want: "&lt;x&gt;"},
		{name: "breakout attempt", input: `" onload="alert(1)`, want: "&quot; onload=&quot;alert(1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeAttr(tt.input); got != tt.want {
				t.Errorf("escapeAttr(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
