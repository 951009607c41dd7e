package main

import (
	"github.com/spf13/cobra"
)

func init() {
	buildCmd.Flags().Bool("clean", false, "discard the previous build directory")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the website once and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		clean, err := cmd.Flags().GetBool("clean")
		if err != nil {
			return err
		}

		_, _, r, err := setup()
		if err != nil {
			return err
		}

		return r.BuildSite(clean)
	},
}
