package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/velum-dev/velum/internal/config"
	"github.com/velum-dev/velum/pkg/serve"
)

func serveCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the development server",
		Long: `Start the development server for the current project.

The server streams each page to the browser as it renders and exposes
/healthz, plus /metrics and /livereload when enabled in velum.json.

Examples:
  velum serve
  velum serve --port=8080
  velum serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from velum.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from velum.json)")

	return cmd
}

func runServe(port int, host string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(wd)
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Serve.Port = port
	}
	if host != "" {
		cfg.Serve.Host = host
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	renderCfg, err := cfg.RenderConfig()
	if err != nil {
		return err
	}

	srv, err := serve.NewServer(welcomeSite(cfg.Name), serve.Config{
		Address:   cfg.Address(),
		Render:    renderCfg,
		Metrics:   cfg.Serve.Metrics,
		Tracing:   cfg.Serve.Tracing,
		DevReload: cfg.Serve.HotReload,
	})
	if err != nil {
		return err
	}

	info("serving %s on http://%s", cfg.Name, cfg.Address())
	return srv.Run()
}
