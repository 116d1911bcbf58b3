package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gitship-labs/gitship/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Dir returns the path to the user-level config directory (~/.gitship/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.gitship/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Debug reports whether verbose diagnostics are enabled, via the "debug"
// config key or the GIT_SHIP_DEBUG environment variable.
func Debug() bool {
	return viper.GetBool("debug")
}

// LicenseName returns the license identifier init applies to projects that
// declare none, honoring the user-level "license_name" setting.
func LicenseName() string {
	if v := Get("license_name"); v != "" {
		return v
	}
	return branding.LicenseName()
}

// LicenseURL returns the license URL init applies to projects that declare
// none, honoring the user-level "license_url" setting.
func LicenseURL() string {
	if v := Get("license_url"); v != "" {
		return v
	}
	return branding.LicenseURL()
}

// DefaultPlugin returns the user's preferred plugin when detection finds no
// ecosystem marker, or empty to defer to detection.
func DefaultPlugin() string {
	return Get("plugin")
}
