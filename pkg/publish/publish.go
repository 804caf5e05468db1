package publish

import (
	"context"
	"strings"
	"sync"

	"github.com/velum-dev/velum/internal/errors"
	"github.com/velum-dev/velum/pkg/html"
	"github.com/velum-dev/velum/pkg/render"
)

// Page builds the node tree for one route. Pages are called once per
// export, so they may read request-independent data sources.
type Page func() *html.Node

// Site is a registry of routes to export.
type Site struct {
	mu    sync.RWMutex
	pages map[string]Page
	order []string
}

// NewSite creates an empty Site.
func NewSite() *Site {
	return &Site{pages: make(map[string]Page)}
}

// Register adds a page under a route like "/" or "/about". Registering a
// route twice replaces the page but keeps its original position.
func (s *Site) Register(route string, page Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pages[route]; !ok {
		s.order = append(s.order, route)
	}
	s.pages[route] = page
}

// Routes returns the registered routes in registration order.
func (s *Site) Routes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

// Page returns the page registered under route.
func (s *Site) Page(route string) (Page, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	page, ok := s.pages[route]
	return page, ok
}

// Store is the destination for exported pages. Implementations write to
// the local filesystem, S3, or any other blob target.
type Store interface {
	// Put writes one exported file. The path is slash-separated and
	// relative to the store root, like "about/index.html".
	Put(ctx context.Context, path string, data []byte, contentType string) error
}

// Publisher renders every page of a Site and writes the result through a
// Store.
type Publisher struct {
	site     *Site
	store    Store
	renderer *render.Renderer
}

// NewPublisher creates a Publisher, failing fast on an invalid render
// configuration.
func NewPublisher(site *Site, store Store, config render.Config) (*Publisher, error) {
	r, err := render.New(config)
	if err != nil {
		return nil, err
	}
	return &Publisher{site: site, store: store, renderer: r}, nil
}

// Report summarizes one export run.
type Report struct {
	// Pages is the number of pages written.
	Pages int

	// Bytes is the total rendered output size.
	Bytes int64
}

// Publish exports all registered pages in registration order. It stops at
// the first failure; the returned report covers the pages written before
// the failure.
func (p *Publisher) Publish(ctx context.Context) (Report, error) {
	var report Report
	for _, route := range p.site.Routes() {
		n, err := p.PublishRoute(ctx, route)
		if err != nil {
			return report, err
		}
		report.Pages++
		report.Bytes += int64(n)
	}
	return report, nil
}

// PublishRoute exports a single route and returns the rendered size.
func (p *Publisher) PublishRoute(ctx context.Context, route string) (int, error) {
	page, ok := p.site.Page(route)
	if !ok {
		return 0, errors.New("E140").WithDetailf("route %q is not registered", route)
	}

	out, err := p.renderer.RenderToString(page())
	if err != nil {
		return 0, err
	}

	path := pathForRoute(route)
	if err := p.store.Put(ctx, path, []byte(out), "text/html; charset=utf-8"); err != nil {
		return 0, errors.New("E131").WithDetailf("writing %s", path).Wrap(err)
	}
	return len(out), nil
}

// pathForRoute maps a route to its exported file path. The root route
// becomes index.html; every other route becomes route/index.html so
// exported sites serve clean URLs.
func pathForRoute(route string) string {
	route = strings.Trim(route, "/")
	if route == "" {
		return "index.html"
	}
	return route + "/index.html"
}
