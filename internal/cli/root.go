package cli

import (
	"fmt"
	"os"

	"github.com/gitship-labs/gitship/internal/branding"
	"github.com/gitship-labs/gitship/internal/config"
	"github.com/gitship-labs/gitship/internal/ship"
	"github.com/spf13/cobra"

	// Register the bundled plugins.
	_ "github.com/gitship-labs/gitship/internal/plugins/gomod"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagDir    string
	flagPlugin string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` drives a project through a uniform shipping lifecycle:
init derives and records project metadata, build produces the artifact,
test verifies it, and ship publishes it. Per-ecosystem plugins supply the
concrete behavior behind each step.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDir, "directory", "C", "", "Run as if started in this project directory")
	rootCmd.PersistentFlags().StringVar(&flagPlugin, "plugin", "", "Plugin to use (default: detected from the project)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// projectDir resolves the directory the command operates on.
func projectDir() (string, error) {
	if flagDir != "" {
		return flagDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}

// pluginName resolves the plugin to use: the --plugin flag, then the
// user-level "plugin" setting, then ecosystem detection.
func pluginName(dir string) string {
	if flagPlugin != "" {
		return flagPlugin
	}
	if name := config.DefaultPlugin(); name != "" {
		return name
	}
	return ship.Detect(dir)
}

// setupProject constructs the project and its plugin hooks for a lifecycle
// command.
func setupProject() (*ship.Project, ship.Hooks, string, error) {
	dir, err := projectDir()
	if err != nil {
		return nil, nil, "", err
	}

	name := pluginName(dir)
	p := ship.NewProject(dir)
	hooks, err := ship.New(name, p)
	if err != nil {
		return nil, nil, "", err
	}
	return p, hooks, name, nil
}
