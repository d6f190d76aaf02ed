package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// main wires the CLI. Business logic lives in internal service packages.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "librarian",
		Short:         "Library management REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before reading the environment")

	serveCmd := newServeCmd(&envFile)
	root.AddCommand(serveCmd, newMigrateCmd(&envFile))
	// Running the binary without a subcommand starts the server.
	root.RunE = serveCmd.RunE

	return root
}
