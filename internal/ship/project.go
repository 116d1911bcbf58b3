package ship

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gitship-labs/gitship/internal/gitrepo"
	"github.com/gitship-labs/gitship/internal/lazy"
	"github.com/gitship-labs/gitship/internal/shipconf"
)

// Project holds the resolved state for one project directory. Its metadata
// fields are computed on first access and cached for the instance's
// lifetime; the Set methods overwrite the cache and return the project for
// chaining.
type Project struct {
	dir string
	git *gitrepo.Repo

	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	config *lazy.Field[shipconf.Config]
	name   *lazy.Field[string]
	repo   *lazy.Field[string]
}

// NewProject returns a Project rooted at dir.
func NewProject(dir string) *Project {
	p := &Project{dir: dir, git: gitrepo.New(dir)}
	p.config = lazy.New("config", p.loadConfig)
	p.name = lazy.New("project_name", p.resolveName)
	p.repo = lazy.New("repository", p.resolveRepository)
	return p
}

// Dir returns the project root directory.
func (p *Project) Dir() string { return p.dir }

// Git returns the repository inspector bound to the project directory.
func (p *Project) Git() *gitrepo.Repo { return p.git }

// ConfigPath returns the path of the project's config file, honoring the
// environment override.
func (p *Project) ConfigPath() string { return shipconf.DefaultPath(p.dir) }

// Config returns the project config, loading it from the config file on
// first access.
func (p *Project) Config() (shipconf.Config, error) { return p.config.Get() }

// SetConfig replaces the cached config.
func (p *Project) SetConfig(cfg shipconf.Config) *Project {
	p.config.Set(cfg)
	return p
}

// Name returns the project name from config. An absent or empty
// project_name key yields a *MissingFieldError.
func (p *Project) Name() (string, error) { return p.name.Get() }

// SetName overrides the project name.
func (p *Project) SetName(name string) *Project {
	p.name.Set(name)
	return p
}

// Repository returns the canonical repository URL: the config value
// verbatim when present, otherwise derived from the git remote listing.
func (p *Project) Repository() (string, error) { return p.repo.Get() }

// SetRepository overrides the repository URL.
func (p *Project) SetRepository(url string) *Project {
	p.repo.Set(url)
	return p
}

// Author returns the last commit's author formatted with the given git log
// format string ("%an" for name, "%ae" for email).
func (p *Project) Author(format string) (string, error) {
	return p.git.Author(format)
}

// Run executes an external command in the project directory, streaming its
// output to the project's writers. A non-zero exit yields an *ExitError
// carrying the full command line; on success the project is returned for
// chaining.
func (p *Project) Run(name string, args ...string) (*Project, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = p.dir
	cmd.Stdout = p.stdout()
	cmd.Stderr = p.stderr()

	if err := cmd.Run(); err != nil {
		line := strings.Join(append([]string{name}, args...), " ")
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ExitError{CommandLine: line, Code: exitErr.ExitCode()}
		}
		return nil, fmt.Errorf("starting %q: %w", line, err)
	}
	return p, nil
}

func (p *Project) loadConfig() (shipconf.Config, error) {
	return shipconf.Load(p.ConfigPath())
}

func (p *Project) resolveName() (string, error) {
	cfg, err := p.Config()
	if err != nil {
		return "", err
	}
	name := cfg.Get(p.name.Name())
	if name == "" {
		return "", &MissingFieldError{Field: p.name.Name()}
	}
	return name, nil
}

func (p *Project) resolveRepository() (string, error) {
	cfg, err := p.Config()
	if err != nil {
		return "", err
	}
	if url := cfg.Get("repository"); url != "" {
		return url, nil
	}
	return p.git.RemoteURL()
}

func (p *Project) stdout() io.Writer {
	if p.Stdout != nil {
		return p.Stdout
	}
	return os.Stdout
}

func (p *Project) stderr() io.Writer {
	if p.Stderr != nil {
		return p.Stderr
	}
	return os.Stderr
}
