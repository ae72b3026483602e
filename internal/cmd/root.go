// Package cmd implements the website command line.
package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd runs the server when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "website",
	Short: "AyurSutra landing page server",
	Long: `Serves the AyurSutra landing page with its live page effects.

Without a subcommand the HTTP server is started, same as "website serve".`,
	SilenceUsage: true,
	RunE:         runServe,
}

// NewRootCommand returns the root command. Used by tests.
func NewRootCommand() *cobra.Command {
	return rootCmd
}

// Execute is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}
