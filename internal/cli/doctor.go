package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/gitship-labs/gitship/internal/gitrepo"
	"github.com/gitship-labs/gitship/internal/ship"
	"github.com/gitship-labs/gitship/internal/shipconf"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the project's shipping setup",
	Long: `Check that the project can be shipped: the git binary is available,
the directory is a working tree, the config file parses and matches the
expected key shapes, and a repository URL can be resolved.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := projectDir()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		problems := 0

		fmt.Fprintln(out, "Shipping check:")

		// git binary.
		if path, lookErr := exec.LookPath("git"); lookErr == nil {
			fmt.Fprintf(out, "  [ OK ] git found at %s\n", path)
		} else {
			fmt.Fprintln(out, "  [FAIL] git not found on PATH")
			problems++
		}

		// Working tree.
		repo := gitrepo.New(dir)
		if repo.IsWorkTree() {
			fmt.Fprintf(out, "  [ OK ] %s is a git working tree\n", dir)
		} else {
			fmt.Fprintf(out, "  [MISS] %s has no .git entry\n", dir)
			problems++
		}

		// Config file.
		confPath := shipconf.DefaultPath(dir)
		cfg, loadErr := shipconf.Load(confPath)
		switch {
		case loadErr == nil:
			fmt.Fprintf(out, "  [ OK ] %s parsed (%d keys)\n", confPath, len(cfg))
		case os.IsNotExist(unwrapLoadErr(loadErr)):
			fmt.Fprintf(out, "  [MISS] %s does not exist\n", confPath)
			fmt.Fprintf(out, "         Run '%s init' to create it\n", rootCmd.Name())
			problems++
		default:
			fmt.Fprintf(out, "  [FAIL] %v\n", loadErr)
			problems++
		}

		// Schema validation.
		if loadErr == nil {
			result, valErr := shipconf.Validate(cfg)
			switch {
			case valErr != nil:
				fmt.Fprintf(out, "  [FAIL] validating config: %v\n", valErr)
				problems++
			case result.Valid:
				fmt.Fprintln(out, "  [ OK ] config matches the expected key shapes")
			default:
				for _, issue := range result.Issues {
					fmt.Fprintf(out, "  [WARN] config%s: %s\n", issue.Path, issue.Message)
				}
			}
		}

		// Repository URL.
		p := ship.NewProject(dir)
		if loadErr != nil {
			p.SetConfig(shipconf.Config{})
		}
		if url, repoErr := p.Repository(); repoErr == nil {
			fmt.Fprintf(out, "  [ OK ] repository: %s\n", url)
		} else {
			fmt.Fprintf(out, "  [FAIL] %v\n", repoErr)
			problems++
		}

		fmt.Fprintf(out, "\nPlugin selection: %s\n", pluginName(dir))

		if problems > 0 {
			return fmt.Errorf("doctor found %d problem(s)", problems)
		}
		return nil
	},
}

// unwrapLoadErr digs the underlying cause out of a shipconf load failure.
func unwrapLoadErr(err error) error {
	if le, ok := err.(*shipconf.LoadError); ok {
		return le.Err
	}
	return err
}
