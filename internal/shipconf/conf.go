package shipconf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gitship-labs/gitship/internal/branding"
)

// Config is the project metadata map read from .git-ship.conf.
type Config map[string]string

// LoadError reports a config file that could not be opened or read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading config %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// DefaultPath returns the config file path for a project directory. The
// GIT_SHIP_CONFIG environment variable overrides the conventional
// <dir>/.git-ship.conf location.
func DefaultPath(dir string) string {
	if v := os.Getenv(branding.EnvVar("CONFIG")); v != "" {
		return v
	}
	return filepath.Join(dir, branding.ConfFile())
}

// Load reads and parses the config file at path. A file that cannot be
// opened yields a *LoadError wrapping the underlying cause.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return cfg, nil
}

// Parse reads "key = value" lines from r. Whitespace around "=" is
// insignificant, the value runs to end of line, and lines without the pair
// shape are skipped. Later occurrences of a key overwrite earlier ones.
func Parse(r io.Reader) (Config, error) {
	cfg := Config{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		eq := strings.Index(line, "=")
		if eq < 0 {
			continue
		}
		key := strings.TrimRight(line[:eq], " \t")
		value := strings.TrimLeft(line[eq+1:], " \t")
		if key == "" || strings.ContainsAny(key, " \t") {
			continue
		}
		cfg[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

// Save writes the config as sorted "key = value" lines. Used by init to
// persist derived defaults back to the project.
func Save(path string, cfg Config) error {
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s = %s\n", k, cfg[k])
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Get returns the value for key, or the empty string when absent.
func (c Config) Get(key string) string { return c[key] }

// SetDefault sets key to value only when the key is not already present.
// Returns true when the value was applied.
func (c Config) SetDefault(key, value string) bool {
	if _, ok := c[key]; ok {
		return false
	}
	c[key] = value
	return true
}

// Clone returns a shallow copy of the config.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
