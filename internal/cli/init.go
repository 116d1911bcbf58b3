package cli

import (
	"fmt"
	"os"

	"github.com/gitship-labs/gitship/internal/shipconf"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Derive project metadata and write the config file",
	Long: `Derive project metadata and record it in the project config file.

The repository URL is taken from the existing config or from the git remote
listing; homepage, bugtracker, and license defaults are derived from it.
Keys already present in the config are never overwritten, so init is safe
to re-run. Plugins add ecosystem-specific keys on top.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, hooks, name, err := setupProject()
		if err != nil {
			return err
		}

		// A project being initialized for the first time has no config
		// file yet; start from an empty mapping instead of failing.
		if _, err := os.Stat(p.ConfigPath()); os.IsNotExist(err) {
			p.SetConfig(shipconf.Config{})
		}

		if err := hooks.Init(); err != nil {
			return fmt.Errorf("init (%s plugin): %w", name, err)
		}

		cfg, err := p.Config()
		if err != nil {
			return err
		}
		if err := shipconf.Save(p.ConfigPath(), cfg); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized project with the %s plugin. Wrote %s (%d keys).\n",
			name, p.ConfigPath(), len(cfg))
		return nil
	},
}
