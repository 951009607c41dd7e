package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the website, rebuilding it periodically",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}
