// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package, then rebuild. Go's //go:embed
// bakes the file into the binary, so the values need no runtime lookup.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

// defaults holds the parsed branding values, loaded once on first access.
var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	ConfFile    string `yaml:"conf_file"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	LicenseName string `yaml:"license_name"`
	LicenseURL  string `yaml:"license_url"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "git-ship",
			DisplayName: "git-ship",
			Description: "Ship a project to its package registry from the command line",
			ConfFile:    ".git-ship.conf",
			HomeDir:     ".gitship",
			EnvPrefix:   "GIT_SHIP",
			LicenseName: "Artistic License 2.0",
			LicenseURL:  "http://www.opensource.org/licenses/artistic-license-2.0",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "git-ship").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// ConfFile returns the per-project config file name (e.g., ".git-ship.conf").
func ConfFile() string { load(); return defaults.ConfFile }

// HomeDir returns the dot-directory name under $HOME (e.g., ".gitship").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "GIT_SHIP").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// LicenseName returns the license identifier init applies when a project
// declares none.
func LicenseName() string { load(); return defaults.LicenseName }

// LicenseURL returns the license URL init applies when a project declares none.
func LicenseURL() string { load(); return defaults.LicenseURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("CONFIG") → "GIT_SHIP_CONFIG".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
