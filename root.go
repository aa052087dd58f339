package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	serveCmd := newServeCommand()
	rootCmd := &cobra.Command{
		Use:           "ats-backend",
		Short:         "ATS hiring pipeline backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serveCmd.RunE,
	}
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newMigrateCommand())
	return rootCmd
}
