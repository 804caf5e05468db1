package main

import (
	"github.com/velum-dev/velum/pkg/html"
	"github.com/velum-dev/velum/pkg/publish"
)

// welcomeSite is the built-in preview site served by `velum serve` and
// written by `velum export`. Real projects register their own pages
// through publish.Site; this one exists so a freshly initialized project
// has something to look at.
func welcomeSite(name string) *publish.Site {
	site := publish.NewSite()
	site.Register("/", func() *html.Node { return welcomePage(name) })
	site.Register("/styles", func() *html.Node { return stylesPage() })
	return site
}

func welcomePage(name string) *html.Node {
	return html.Document(html.Lang("en"),
		html.Main(
			html.Style("max-width", "40rem"),
			html.Style("margin", "4rem auto"),
			html.Style("font-family", "system-ui, sans-serif"),

			html.H1(html.Textf("Welcome to %s", name)),
			html.P(
				html.Text("This page is rendered by velum. Pages are Go functions returning node trees; "),
				html.Text("styles attach to elements and collapse into one deduplicated stylesheet per page."),
			),
			html.Ul(
				html.Li(html.A(html.Href("/styles"), html.Text("Styling demo"))),
				html.Li(html.A(html.Href("https://velum.dev/docs"), html.Target("_blank"), html.Text("Documentation"))),
			),
		),
	)
}

func stylesPage() *html.Node {
	chip := func(label, color string) *html.Node {
		return html.Span(
			html.Style("background", color),
			html.Style("color", "white"),
			html.Style("padding", "0.25rem 0.75rem"),
			html.Style("border-radius", "9999px"),
			html.StyleOn(":hover", "opacity", "0.8"),
			html.Text(label),
		)
	}

	return html.Document(html.Lang("en"),
		html.Main(
			html.Style("max-width", "40rem"),
			html.Style("margin", "4rem auto"),
			html.Style("font-family", "system-ui, sans-serif"),

			html.H1(html.Text("Atomic styles")),
			html.P(html.Text("Identical declarations share one generated class:")),
			html.Div(
				html.Style("display", "flex"),
				html.Style("gap", "0.5rem"),
				chip("red", "crimson"),
				chip("green", "seagreen"),
				chip("blue", "royalblue"),
			),
			html.P(html.A(html.Href("/"), html.Text("Back"))),
		),
	)
}
