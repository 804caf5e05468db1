package serve

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/velum-dev/velum/pkg/html"
	"github.com/velum-dev/velum/pkg/publish"
	"github.com/velum-dev/velum/pkg/render"
)

func testSite() *publish.Site {
	site := publish.NewSite()
	site.Register("/", func() *html.Node {
		return html.Document(html.H1(html.Text("Home")))
	})
	site.Register("/about", func() *html.Node {
		return html.Document(html.P(html.Style("color", "red"), html.Text("About")))
	})
	return site
}

func TestServerServesPages(t *testing.T) {
	s, err := NewServer(testSite(), Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "<!doctype html>") {
		t.Errorf("body should start with the doctype, got %q", body)
	}
	if !strings.Contains(body, "<h1>Home</h1>") {
		t.Errorf("body should contain the page content, got %q", body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("got Content-Type %q", ct)
	}
}

func TestServerInjectsStylesheet(t *testing.T) {
	s, err := NewServer(testSite(), Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", "/about", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "<style>.v1{color:red}</style>") {
		t.Errorf("head should carry the page stylesheet, got %q", body)
	}
}

func TestServerHealthz(t *testing.T) {
	s, err := NewServer(testSite(), Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("got status %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("got body %q, want %q", rec.Body.String(), "ok")
	}
}

func TestServerNotFound(t *testing.T) {
	s, err := NewServer(testSite(), Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "E140") {
		t.Errorf("body should name the error code, got %q", rec.Body.String())
	}
}

func TestServerMetricsEndpoint(t *testing.T) {
	s, err := NewServer(testSite(), Config{Metrics: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if body, _ := io.ReadAll(rec.Body); len(body) == 0 {
		t.Error("metrics endpoint should produce output")
	}
}

func TestServerMetricsDisabledByDefault(t *testing.T) {
	s, err := NewServer(testSite(), Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", rec.Code)
	}
}

func TestServerPrettyMode(t *testing.T) {
	s, err := NewServer(testSite(), Config{Render: render.Config{Mode: render.ModePretty}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if !strings.Contains(rec.Body.String(), "<!doctype html>\n<html>\n") {
		t.Errorf("pretty mode should produce indented output, got %q", rec.Body.String())
	}
}

func TestServerInvalidRenderConfig(t *testing.T) {
	if _, err := NewServer(testSite(), Config{Render: render.Config{ChunkSize: -1}}); err == nil {
		t.Error("expected error for invalid render config")
	}
}

func TestServerReloadDisabledByDefault(t *testing.T) {
	s, err := NewServer(testSite(), Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Reload() != nil {
		t.Error("reload hub should be nil unless DevReload is set")
	}

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", "/livereload", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", rec.Code)
	}
}
