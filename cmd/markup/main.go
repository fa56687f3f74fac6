package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "markup",
		Short: "Declarative markup tree builder",
		Long: `markup builds tree-structured documents from a compact functional
notation and serializes them to markup, with optional indentation.

The CLI renders a showcase page built with the library:

  • preview  - print the rendered page to stdout
  • serve    - serve the page with live event dispatch and metrics
  • publish  - render the page and upload it to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		previewCmd(),
		serveCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
