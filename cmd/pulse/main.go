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
		Use:   "pulse",
		Short: "Reactive server-driven UIs for Go",
		Long: `Pulse mounts reactive views into a server-side document and
mirrors every DOM operation to a thin browser client over WebSocket.

  • Scope-owned lifecycles: unmounting rolls back everything a view did
  • Stream-bound attributes and text, no tree diffing
  • Ordered dynamic children with self-removal
  • Single-slot rendering with blocking or forked replacement`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		initCmd(),
		checkCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
