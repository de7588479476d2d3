package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "jsonapi",
	Short: "Tooling for JSON:API resource documents",
	Long: `jsonapi inspects JSON:API-flavored resource documents.

The check command verifies top-level shape, mandatory per-entry fields,
relationship identifier shape, and whether relationship references resolve
against the document's included set.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
