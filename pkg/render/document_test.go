package render

import (
	"strings"
	"testing"

	"github.com/velum-dev/velum/pkg/html"
)

func TestDocumentCompact(t *testing.T) {
	r := mustRenderer(t, Config{})

	doc := html.Document(html.Lang("en"),
		html.Div(html.Style("color", "red"), html.Text("hi")),
	)
	out, err := r.RenderToString(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<!doctype html><html lang="en"><head><meta charset="utf-8">` +
		`<style>.v1{color:red}</style></head><body><div class="v1">hi</div></body></html>`
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestDocumentNoStylesOmitsStyleElement(t *testing.T) {
	r := mustRenderer(t, Config{})

	doc := html.Document(html.P(html.Text("x")))
	out, err := r.RenderToString(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<!doctype html><html><head><meta charset="utf-8"></head><body><p>x</p></body></html>`
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
	if strings.Contains(out, "<style>") {
		t.Errorf("empty stylesheet should emit no style element: %q", out)
	}
}

func TestDocumentStylesCollectedFromDeepBody(t *testing.T) {
	r := mustRenderer(t, Config{})

	doc := html.Document(
		html.Div(
			html.Section(
				html.Span(html.StyleOn(":hover", "color", "blue"), html.Text("a")),
			),
		),
	)
	out, err := r.RenderToString(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<style>.v1:hover{color:blue}</style>") {
		t.Errorf("head should carry rules from deep in the body, got %q", out)
	}
	headEnd := strings.Index(out, "</head>")
	bodyStart := strings.Index(out, "<body>")
	if headEnd == -1 || bodyStart == -1 || headEnd > bodyStart {
		t.Errorf("head must precede body, got %q", out)
	}
}

func TestDocumentPretty(t *testing.T) {
	r := mustRenderer(t, Config{Mode: ModePretty})

	doc := html.Document(
		html.Div(html.Text("hi")),
	)
	out, err := r.RenderToString(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<!doctype html>\n" +
		"<html>\n" +
		"  <head>\n" +
		"    <meta charset=\"utf-8\">\n" +
		"  </head>\n" +
		"  <body>\n" +
		"    <div>hi</div>\n" +
		"  </body>\n" +
		"</html>\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestDocumentAttrEscaping(t *testing.T) {
	r := mustRenderer(t, Config{})

	doc := html.Document(html.Data("x", `a"b`), html.P(html.Text("x")))
	out, err := r.RenderToString(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `<html data-x="a&quot;b">`) {
		t.Errorf("html attributes should be escaped, got %q", out)
	}
}
