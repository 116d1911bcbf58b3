package cli

import (
	"errors"
	"fmt"

	"github.com/gitship-labs/gitship/internal/ship"
	"github.com/spf13/cobra"
)

var (
	shipNoBuild bool
	shipNoTest  bool
)

func init() {
	shipCmd.Flags().BoolVar(&shipNoBuild, "no-build", false, "Skip the build step before shipping")
	shipCmd.Flags().BoolVar(&shipNoTest, "no-test", false, "Skip the test step before shipping")
	rootCmd.AddCommand(shipCmd)
}

var shipCmd = &cobra.Command{
	Use:   "ship",
	Short: "Build, test, and publish the project",
	Long: `Publish the project through its plugin.

By default ship builds and tests first, then runs the plugin's ship step.
A plugin without a test step is tolerated; a failing build or test aborts
the ship.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, hooks, name, err := setupProject()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if !shipNoBuild {
			fmt.Fprintf(out, "Building with the %s plugin...\n", name)
			if err := hooks.Build(); err != nil {
				return fmt.Errorf("build (%s plugin): %w", name, err)
			}
		}

		if !shipNoTest {
			fmt.Fprintf(out, "Testing with the %s plugin...\n", name)
			if err := hooks.Test(); err != nil {
				// An ecosystem without a test step may leave Test abstract.
				var notImpl *ship.NotImplementedError
				if !errors.As(err, &notImpl) {
					return fmt.Errorf("test (%s plugin): %w", name, err)
				}
				fmt.Fprintf(out, "No test step for the %s plugin, skipping.\n", name)
			}
		}

		fmt.Fprintf(out, "Shipping with the %s plugin...\n", name)
		if err := hooks.Ship(); err != nil {
			return fmt.Errorf("ship (%s plugin): %w", name, err)
		}
		fmt.Fprintln(out, "Shipped.")
		return nil
	},
}
