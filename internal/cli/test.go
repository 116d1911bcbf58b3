package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(testCmd)
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the project's test suite",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, hooks, name, err := setupProject()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Testing with the %s plugin...\n", name)
		if err := hooks.Test(); err != nil {
			return fmt.Errorf("test (%s plugin): %w", name, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Tests passed.")
		return nil
	},
}
