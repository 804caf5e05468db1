package render

import (
	"strings"
	"sync"
	"testing"

	"github.com/velum-dev/velum/internal/errors"
	"github.com/velum-dev/velum/pkg/html"
)

func mustRenderer(t *testing.T, config Config) *Renderer {
	t.Helper()
	r, err := New(config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func TestRenderText(t *testing.T) {
	r := mustRenderer(t, Config{})

	out, err := r.RenderToString(html.Text("Hello, World!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Hello, World!" {
		t.Errorf("got %q, want %q", out, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	r := mustRenderer(t, Config{})

	out, err := r.RenderToString(html.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("HTML should be escaped, got %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", out)
	}
	if !strings.Contains(out, "alert('xss')") {
		t.Errorf("quotes should not be escaped in text content, got %q", out)
	}
}

func TestRenderElement(t *testing.T) {
	r := mustRenderer(t, Config{})

	node := html.Div(html.Class("container"),
		html.H1(html.Text("Title")),
		html.P(html.Text("Content")),
	)
	out, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div class="container"><h1>Title</h1><p>Content</p></div>`
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRenderAttributeOrder(t *testing.T) {
	r := mustRenderer(t, Config{})

	node := html.A(html.Href("/x"), html.ID("link"), html.Class("nav"))
	out, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<a href="/x" id="link" class="nav"></a>`
	if out != want {
		t.Errorf("attributes should keep insertion order, got %q, want %q", out, want)
	}
}

func TestRenderAttributeEscaping(t *testing.T) {
	r := mustRenderer(t, Config{})

	node := html.Div(html.Data("msg", `he said "hi" & 'bye' <now>`))
	out, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div data-msg="he said &quot;hi&quot; &amp; &#39;bye&#39; &lt;now&gt;"></div>`
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRenderVoidElements(t *testing.T) {
	r := mustRenderer(t, Config{})

	tests := []struct {
		name string
		node *html.Node
		want string
	}{
		{
			name: "input",
			node: html.Input(html.Type("text"), html.Name("email")),
			want: `<input type="text" name="email">`,
		},
		{
			name: "br",
			node: html.Br(),
			want: `<br>`,
		},
		{
			name: "img",
			node: html.Img(html.Src("/a.png"), html.Alt("a")),
			want: `<img src="/a.png" alt="a">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("got %q, want %q", out, tt.want)
			}
		})
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	r := mustRenderer(t, Config{})

	tests := []struct {
		name string
		node *html.Node
		want string
	}{
		{
			name: "present",
			node: html.Input(html.Type("checkbox"), html.Checked()),
			want: `<input type="checkbox" checked>`,
		},
		{
			name: "conditional false",
			node: html.Button(html.DisabledIf(false), html.Text("Go")),
			want: `<button>Go</button>`,
		},
		{
			name: "conditional true",
			node: html.Button(html.DisabledIf(true), html.Text("Go")),
			want: `<button disabled>Go</button>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("got %q, want %q", out, tt.want)
			}
		})
	}
}

func TestRenderStylesToClasses(t *testing.T) {
	r := mustRenderer(t, Config{})

	node := html.Div(
		html.Style("color", "red"),
		html.Style("padding", "4px"),
	)
	out, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div class="v1 v2"></div>`
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
	if strings.Contains(out, "style=") {
		t.Errorf("styles should resolve to classes, not a style attribute: %q", out)
	}
}

func TestRenderStyleDedupAcrossSiblings(t *testing.T) {
	r := mustRenderer(t, Config{})

	node := html.Div(
		html.Span(html.Style("color", "red"), html.Text("a")),
		html.Span(html.Style("color", "red"), html.Text("b")),
		html.Span(html.Style("color", "blue"), html.Text("c")),
	)
	out, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div><span class="v1">a</span><span class="v1">b</span><span class="v2">c</span></div>`
	if out != want {
		t.Errorf("identical declarations should share a class, got %q, want %q", out, want)
	}
}

func TestRenderStylesMergeIntoClassAttr(t *testing.T) {
	r := mustRenderer(t, Config{})

	node := html.Div(html.Class("card"), html.Style("color", "red"))
	out, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div class="card v1"></div>`
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRenderGroupTransparent(t *testing.T) {
	r := mustRenderer(t, Config{})

	node := html.Div(
		html.Group(
			html.Span(html.Text("a")),
			html.Span(html.Text("b")),
		),
	)
	out, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div><span>a</span><span>b</span></div>`
	if out != want {
		t.Errorf("group should emit no wrapper, got %q, want %q", out, want)
	}
}

type greeting struct {
	name string
}

func (g greeting) HTML() *html.Node {
	return html.P(html.Text("Hello, " + g.name))
}

func TestRenderComponent(t *testing.T) {
	r := mustRenderer(t, Config{})

	node := html.Div(greeting{name: "Ada"})
	out, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div><p>Hello, Ada</p></div>`
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRenderRawUnescaped(t *testing.T) {
	r := mustRenderer(t, Config{})

	node := html.Div(html.Raw(`<b>bold & raw</b>`))
	out, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div><b>bold & raw</b></div>`
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRenderEmptyNode(t *testing.T) {
	r := mustRenderer(t, Config{})

	node := html.Div(
		html.Empty(),
		html.If(false, html.Span(html.Text("hidden"))),
		html.Text("x"),
	)
	out, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div>x</div>`
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRenderPrettyNav(t *testing.T) {
	r := mustRenderer(t, Config{Mode: ModePretty})

	node := html.Ul(
		html.Li(html.A(html.Href("/home"), html.Text("Home"))),
		html.Li(html.A(html.Href("/about"), html.Text("About"))),
	)
	out, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<ul>\n" +
		"  <li><a href=\"/home\">Home</a></li>\n" +
		"  <li><a href=\"/about\">About</a></li>\n" +
		"</ul>\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRenderPrettyNested(t *testing.T) {
	r := mustRenderer(t, Config{Mode: ModePretty})

	node := html.Div(
		html.Section(
			html.P(html.Text("hi")),
		),
	)
	out, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<div>\n" +
		"  <section>\n" +
		"    <p>hi</p>\n" +
		"  </section>\n" +
		"</div>\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRenderPrettyCustomIndent(t *testing.T) {
	r := mustRenderer(t, Config{Mode: ModePretty, Indent: "\t"})

	node := html.Div(html.P(html.Text("x")))
	out, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<div>\n\t<p>x</p>\n</div>\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestPrettyAndCompactSameMarkup(t *testing.T) {
	node := html.Div(html.Class("a"),
		html.Ul(
			html.Li(html.Text("one")),
			html.Li(html.Text("two")),
		),
	)

	compact, err := mustRenderer(t, Config{}).RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pretty, err := mustRenderer(t, Config{Mode: ModePretty}).RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	strip := func(s string) string {
		s = strings.ReplaceAll(s, "\n", "")
		return strings.ReplaceAll(s, "  ", "")
	}
	if strip(pretty) != compact {
		t.Errorf("pretty output should differ only in whitespace:\ncompact: %q\npretty:  %q", compact, pretty)
	}
}

func TestInvalidConfig(t *testing.T) {
	if _, err := New(Config{Mode: Mode(9)}); !errors.IsCode(err, "E101") {
		t.Errorf("want E101 for unknown mode, got %v", err)
	}
	if _, err := New(Config{ChunkSize: -1}); !errors.IsCode(err, "E101") {
		t.Errorf("want E101 for negative chunk size, got %v", err)
	}
}

func TestContextSingleUse(t *testing.T) {
	c, err := NewContext(Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sb strings.Builder
	if err := c.Render(&sb, html.Div()); err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	if err := c.Render(&sb, html.Div()); !errors.IsCode(err, "E102") {
		t.Errorf("want E102 on context reuse, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "", want: ModeCompact},
		{in: "compact", want: ModeCompact},
		{in: "pretty", want: ModePretty},
		{in: "fancy", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			if !errors.IsCode(err, "E101") {
				t.Errorf("ParseMode(%q): want E101, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConcurrentRenders(t *testing.T) {
	r := mustRenderer(t, Config{})

	node := html.Div(
		html.Span(html.Style("color", "red"), html.Text("a")),
		html.Span(html.Style("color", "blue"), html.Text("b")),
	)
	want, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.RenderToString(node)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if got != want {
				t.Errorf("got %q, want %q", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestRenderDocumentWrapsBody(t *testing.T) {
	r := mustRenderer(t, Config{})

	var sb strings.Builder
	if err := r.RenderDocument(&sb, html.P(html.Text("x"))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<!doctype html><html><head><meta charset="utf-8"></head><body><p>x</p></body></html>`
	if sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}
}

func TestContextStylesheet(t *testing.T) {
	c, err := NewContext(Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sb strings.Builder
	node := html.Div(html.Style("color", "red"))
	if err := c.Render(&sb, node); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Stylesheet().String(); got != ".v1{color:red}" {
		t.Errorf("got %q, want %q", got, ".v1{color:red}")
	}
}
