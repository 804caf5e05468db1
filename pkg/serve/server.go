package serve

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/velum-dev/velum/internal/errors"
	"github.com/velum-dev/velum/pkg/middleware"
	"github.com/velum-dev/velum/pkg/publish"
	"github.com/velum-dev/velum/pkg/render"
)

// Config configures a page server.
type Config struct {
	// Address is the address to listen on (e.g., ":8080" or "localhost:3000").
	Address string

	// Render configures how pages are serialized.
	Render render.Config

	// Metrics mounts /metrics and enables the Prometheus middleware.
	Metrics bool

	// Tracing enables the OpenTelemetry middleware.
	Tracing bool

	// DevReload mounts the /livereload WebSocket endpoint.
	DevReload bool

	// Logger is the structured logger. Defaults to slog.Default().
	Logger *slog.Logger

	// ReadHeaderTimeout bounds how long reading request headers may take.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout is the maximum time to wait for graceful shutdown.
	ShutdownTimeout time.Duration
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.Address == "" {
		c.Address = ":8080"
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = 10 * time.Second
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 30 * time.Second
	}
	return c
}

// Server serves the pages of a Site over HTTP, streaming each render.
type Server struct {
	site       *publish.Site
	config     Config
	logger     *slog.Logger
	streamer   *render.StreamingRenderer
	reload     *ReloadHub
	router     chi.Router
	httpServer *http.Server
}

// NewServer creates a Server for the given site, failing fast on an
// invalid render configuration.
func NewServer(site *publish.Site, config Config) (*Server, error) {
	config = config.withDefaults()

	streamer, err := render.NewStreamingRenderer(config.Render)
	if err != nil {
		return nil, err
	}

	s := &Server{
		site:     site,
		config:   config,
		logger:   config.Logger,
		streamer: streamer,
	}
	if config.DevReload {
		s.reload = NewReloadHub()
	}
	s.router = s.buildRouter()
	return s, nil
}

// buildRouter assembles the chi router with the configured middleware and
// one route per registered page.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if s.config.Metrics {
		r.Use(middleware.Prometheus())
	}
	if s.config.Tracing {
		r.Use(middleware.OpenTelemetry())
	}

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})

	if s.config.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}
	if s.reload != nil {
		r.Get("/livereload", s.reload.HandleWebSocket)
	}

	for _, route := range s.site.Routes() {
		r.Get(route, s.pageHandler(route))
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		s.logger.Warn("page not found", "path", req.URL.Path)
		http.Error(w, errors.New("E140").FormatCompact(), http.StatusNotFound)
	})

	return r
}

// pageHandler streams one registered page.
func (s *Server) pageHandler(route string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		page, ok := s.site.Page(route)
		if !ok {
			http.Error(w, errors.New("E140").FormatCompact(), http.StatusNotFound)
			return
		}
		if err := s.streamer.ServeNode(w, page()); err != nil {
			// Headers are already sent once streaming starts; all we can
			// do is log and drop the connection.
			s.logger.Error("render failed", "path", route, "error", err)
		}
	}
}

// ServeHTTP implements http.Handler so the server can be mounted or
// driven by httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Reload returns the livereload hub, or nil when DevReload is disabled.
func (s *Server) Reload() *ReloadHub {
	return s.reload
}

// Run starts the server and blocks until shutdown.
func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return err
		}
		return nil

	case <-shutdown:
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if s.reload != nil {
		s.reload.Close()
	}
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}
