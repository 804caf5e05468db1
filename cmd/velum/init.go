package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/velum-dev/velum/internal/config"
	"github.com/velum-dev/velum/internal/errors"
)

func initCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create velum.json in the current directory",
		Long: `Create a velum.json configuration file with default settings.

Examples:
  velum init
  velum init --name=mysite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(name)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Project name (default: directory name)")

	return cmd
}

func runInit(name string) error {
	if _, err := os.Stat(config.ConfigFileName); err == nil {
		return errors.Newf(errors.CategoryCLI, "velum.json already exists").
			WithSuggestion("Edit the existing file instead of re-running init")
	}

	if name == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		name = filepath.Base(wd)
	}

	cfg := config.New()
	cfg.Name = name
	if err := cfg.SaveTo(config.ConfigFileName); err != nil {
		return err
	}

	success("created %s", config.ConfigFileName)
	info("project: %s", name)
	info("run 'velum serve' to preview, 'velum export' to build the static site")
	return nil
}
