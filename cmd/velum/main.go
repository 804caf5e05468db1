package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/velum-dev/velum/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦  ╦┌─┐┬  ┬ ┬┌┬┐
  ╚╗╔╝├┤ │  │ ││││
   ╚╝ └─┘┴─┘└─┘┴ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "velum",
		Short: "Composable HTML rendering for Go",
		Long: `Velum renders typed HTML node trees to streamed pages and
static sites.

Pages are plain Go functions returning node trees. Styles attach
directly to elements and are deduplicated into a per-page atomic
stylesheet. The same tree serves as a streamed HTTP response or a
static export to disk or S3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		initCmd(),
		serveCmd(),
		exportCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the Velum ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
