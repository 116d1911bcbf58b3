package ship

import (
	"strings"

	"github.com/gitship-labs/gitship/internal/config"
)

// Hooks is the lifecycle contract a plugin implements. Plugins embed *Base
// and override the hooks their ecosystem supports; unoverridden hooks fall
// back to the Base defaults.
type Hooks interface {
	// Init derives and merges default project metadata into the config.
	Init() error
	// Build produces the shippable artifact.
	Build() error
	// Test runs the project's test suite.
	Test() error
	// Ship publishes the built artifact.
	Ship() error
}

// Base provides the default lifecycle behavior. Init performs the metadata
// merge every ecosystem shares; build, test, and ship are abstract and
// report the concrete plugin as not implementing them.
type Base struct {
	*Project
	kind string
}

// NewBase returns lifecycle defaults for the named plugin kind operating on
// the given project.
func NewBase(kind string, p *Project) *Base {
	return &Base{Project: p, kind: kind}
}

// Kind returns the concrete plugin name used in diagnostics.
func (b *Base) Kind() string { return b.kind }

// Init merges derived defaults into a fresh copy of the config and replaces
// the cached config with the result. Existing keys are never overwritten,
// so running init twice is a no-op:
//
//	bugtracker    repository URL with .git stripped and /issues appended
//	homepage      repository URL with .git stripped
//	license_name  user-level setting, or the built-in default
//	license_url   user-level setting, or the built-in default
//
// Plugins typically call Base.Init first, then add ecosystem-specific keys.
func (b *Base) Init() error {
	repo, err := b.Repository()
	if err != nil {
		return err
	}

	cfg, err := b.Config()
	if err != nil {
		return err
	}
	cfg = cfg.Clone()

	base := strings.TrimSuffix(repo, ".git")
	bugtracker := base + "/issues"
	// Collapse the doubled slash left by a repository URL with a trailing slash.
	bugtracker = strings.Replace(bugtracker, "//issues", "/issues", 1)

	cfg.SetDefault("bugtracker", bugtracker)
	cfg.SetDefault("homepage", base)
	cfg.SetDefault("license_name", config.LicenseName())
	cfg.SetDefault("license_url", config.LicenseURL())

	b.SetConfig(cfg)
	return nil
}

// Build is abstract; concrete plugins must override it.
func (b *Base) Build() error {
	return &NotImplementedError{Op: "build", Kind: b.kind}
}

// Test is abstract; plugins for ecosystems without a test step may leave it so.
func (b *Base) Test() error {
	return &NotImplementedError{Op: "test", Kind: b.kind}
}

// Ship is abstract; concrete plugins must override it.
func (b *Base) Ship() error {
	return &NotImplementedError{Op: "ship", Kind: b.kind}
}
