package render

import (
	"io"
	"testing"

	"github.com/velum-dev/velum/pkg/html"
)

func benchTree() *html.Node {
	return html.Div(html.Class("page"),
		html.Header(
			html.Nav(bigList(20)),
		),
		html.Main(
			html.ForEach(make([]struct{}, 50), func(_ struct{}, i int) *html.Node {
				return html.Article(
					html.H2(html.Textf("Post %d", i)),
					html.P(html.Style("color", "#333"), html.Text("Lorem ipsum dolor sit amet.")),
				)
			}),
		),
	)
}

func BenchmarkRenderCompact(b *testing.B) {
	r, _ := New(Config{})
	node := benchTree()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := r.RenderToWriter(io.Discard, node); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRenderPretty(b *testing.B) {
	r, _ := New(Config{Mode: ModePretty})
	node := benchTree()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := r.RenderToWriter(io.Discard, node); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkChunks(b *testing.B) {
	r, _ := New(Config{ChunkSize: 1024})
	node := benchTree()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for range r.Chunks(node) {
		}
	}
}

func BenchmarkRenderDocument(b *testing.B) {
	r, _ := New(Config{})
	doc := html.Document(benchTree())
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := r.RenderToWriter(io.Discard, doc); err != nil {
			b.Fatal(err)
		}
	}
}
