package gomod

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"

	"github.com/gitship-labs/gitship/internal/lazy"
	"github.com/gitship-labs/gitship/internal/ship"
)

var moduleDirective = regexp.MustCompile(`(?m)^module\s+(\S+)`)

func init() {
	ship.Register("gomod", func(p *ship.Project) ship.Hooks {
		return NewPlugin(p)
	})
}

// Plugin ships Go modules. It inherits the core lifecycle defaults from
// ship.Base and declares its own lazy module-path attribute.
type Plugin struct {
	*ship.Base
	modulePath *lazy.Field[string]
}

// NewPlugin returns the gomod plugin bound to a project.
func NewPlugin(p *ship.Project) *Plugin {
	g := &Plugin{Base: ship.NewBase("gomod", p)}
	g.modulePath = lazy.New("module_path", g.readModulePath)
	return g
}

// ModulePath returns the module path declared in the project's go.mod.
func (g *Plugin) ModulePath() (string, error) { return g.modulePath.Get() }

// Init merges the shared defaults, then fills project_name and module from
// the go.mod module path when absent.
func (g *Plugin) Init() error {
	if err := g.Base.Init(); err != nil {
		return err
	}

	module, err := g.ModulePath()
	if err != nil {
		return err
	}

	cfg, err := g.Config()
	if err != nil {
		return err
	}
	cfg = cfg.Clone()
	cfg.SetDefault("project_name", path.Base(module))
	cfg.SetDefault("module", module)
	g.SetConfig(cfg)
	return nil
}

// Build vets and compiles the module.
func (g *Plugin) Build() error {
	if _, err := g.Run("go", "vet", "./..."); err != nil {
		return err
	}
	if _, err := g.Run("go", "build", "./..."); err != nil {
		return err
	}
	return nil
}

// Test runs the module's test suite.
func (g *Plugin) Test() error {
	_, err := g.Run("go", "test", "./...")
	return err
}

// Ship tags the release version and pushes the tag to origin. The version
// comes from the config "version" key, or is bumped from the latest tag
// when absent.
func (g *Plugin) Ship() error {
	version, err := g.shipVersion()
	if err != nil {
		return err
	}

	tag := "v" + version
	if _, err := g.Run("git", "tag", "-a", tag, "-m", "Released "+tag); err != nil {
		return err
	}
	if _, err := g.Run("git", "push", "origin", tag); err != nil {
		return err
	}
	return nil
}

// shipVersion resolves the version to ship: the config "version" key when
// set, otherwise the latest tag bumped per the "version_bump" key (patch
// when unset).
func (g *Plugin) shipVersion() (string, error) {
	cfg, err := g.Config()
	if err != nil {
		return "", err
	}

	if raw := cfg.Get("version"); raw != "" {
		return Normalize(raw)
	}

	latest, err := g.Git().LatestTag()
	if err != nil {
		return "", err
	}
	if latest == "" {
		return "", &ship.MissingFieldError{Field: "version"}
	}
	return Next(latest, cfg.Get("version_bump"))
}

// readModulePath extracts the module path from the project's go.mod.
func (g *Plugin) readModulePath() (string, error) {
	gomodPath := filepath.Join(g.Dir(), "go.mod")
	data, err := os.ReadFile(gomodPath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", gomodPath, err)
	}

	m := moduleDirective.FindSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("no module directive in %s", gomodPath)
	}
	return string(m[1]), nil
}
