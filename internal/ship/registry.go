package ship

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Factory constructs a plugin's lifecycle hooks for a project.
type Factory func(p *Project) Hooks

// plugins maps plugin names to their factories. Plugins register themselves
// from their package init functions.
var plugins = map[string]Factory{}

// detectMarkers maps ecosystem marker files to the plugin that handles them,
// checked in order.
var detectMarkers = []struct {
	file   string
	plugin string
}{
	{"go.mod", "gomod"},
}

func init() {
	Register("base", func(p *Project) Hooks { return NewBase("base", p) })
}

// Register adds a named plugin factory. Re-registering a name panics; plugin
// names are a compile-time namespace.
func Register(name string, f Factory) {
	if _, ok := plugins[name]; ok {
		panic(fmt.Sprintf("ship: plugin %q registered twice", name))
	}
	plugins[name] = f
}

// Names returns the registered plugin names, sorted.
func Names() []string {
	names := make([]string, 0, len(plugins))
	for name := range plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New constructs the named plugin's hooks for a project. Unknown names
// error, listing the supported plugins.
func New(name string, p *Project) (Hooks, error) {
	f, ok := plugins[name]
	if !ok {
		return nil, fmt.Errorf("unknown plugin %q: supported plugins are %s", name, strings.Join(Names(), ", "))
	}
	return f(p), nil
}

// Detect picks a plugin for a project directory by its ecosystem marker
// files, falling back to "base".
func Detect(dir string) string {
	for _, m := range detectMarkers {
		if _, err := os.Stat(filepath.Join(dir, m.file)); err == nil {
			if _, ok := plugins[m.plugin]; ok {
				return m.plugin
			}
		}
	}
	return "base"
}
