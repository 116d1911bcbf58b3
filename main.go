package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gitship-labs/gitship/internal/branding"
	"github.com/gitship-labs/gitship/internal/cli"
	"github.com/gitship-labs/gitship/internal/config"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", branding.CLIName(), err)
		if config.Debug() {
			for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
				fmt.Fprintf(os.Stderr, "  caused by: %v\n", cause)
			}
		}
		os.Exit(1)
	}
}
