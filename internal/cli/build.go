package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the shippable artifact",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, hooks, name, err := setupProject()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Building with the %s plugin...\n", name)
		if err := hooks.Build(); err != nil {
			return fmt.Errorf("build (%s plugin): %w", name, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Build succeeded.")
		return nil
	},
}
