package gomod

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gitship-labs/gitship/internal/ship"
)

// newTestPlugin sets up a project directory with a go.mod and .git-ship.conf.
func newTestPlugin(t *testing.T, gomod, conf string) *Plugin {
	t.Helper()
	dir := t.TempDir()
	if gomod != "" {
		if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0644); err != nil {
			t.Fatalf("writing go.mod: %v", err)
		}
	}
	if conf != "" {
		if err := os.WriteFile(filepath.Join(dir, ".git-ship.conf"), []byte(conf), 0644); err != nil {
			t.Fatalf("writing config: %v", err)
		}
	}
	return NewPlugin(ship.NewProject(dir))
}

func TestModulePath(t *testing.T) {
	g := newTestPlugin(t, "module github.com/acme/widget\n\ngo 1.25\n", "")

	got, err := g.ModulePath()
	if err != nil {
		t.Fatalf("ModulePath() error: %v", err)
	}
	if got != "github.com/acme/widget" {
		t.Errorf("ModulePath() = %q, want %q", got, "github.com/acme/widget")
	}
}

func TestModulePath_NoDirective(t *testing.T) {
	g := newTestPlugin(t, "// not a module file\n", "")

	if _, err := g.ModulePath(); err == nil {
		t.Fatal("expected error for go.mod without module directive, got nil")
	}
}

func TestInit_DerivesProjectName(t *testing.T) {
	g := newTestPlugin(t,
		"module github.com/acme/widget\n",
		"repository = https://github.com/acme/widget.git\n")

	if err := g.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	cfg, err := g.Config()
	if err != nil {
		t.Fatalf("Config() error: %v", err)
	}
	if got := cfg.Get("project_name"); got != "widget" {
		t.Errorf("project_name = %q, want %q", got, "widget")
	}
	if got := cfg.Get("module"); got != "github.com/acme/widget" {
		t.Errorf("module = %q, want %q", got, "github.com/acme/widget")
	}
	// Shared defaults come from Base.Init.
	if got := cfg.Get("homepage"); got != "https://github.com/acme/widget" {
		t.Errorf("homepage = %q, want %q", got, "https://github.com/acme/widget")
	}
}

func TestInit_KeepsExplicitProjectName(t *testing.T) {
	g := newTestPlugin(t,
		"module github.com/acme/widget\n",
		"project_name = not-widget\nrepository = https://github.com/acme/widget.git\n")

	if err := g.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	cfg, _ := g.Config()
	if got := cfg.Get("project_name"); got != "not-widget" {
		t.Errorf("project_name = %q, want preset %q", got, "not-widget")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"1.2.3", "1.2.3", false},
		{"v1.2.3", "1.2.3", false},
		{"1.2.3-rc.1", "1.2.3-rc.1", false},
		{"next-release", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Normalize(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		version string
		bump    string
		want    string
		wantErr bool
	}{
		{"v1.2.3", "", "1.2.4", false},
		{"v1.2.3", "patch", "1.2.4", false},
		{"v1.2.3", "minor", "1.3.0", false},
		{"v1.2.3", "major", "2.0.0", false},
		{"v1.2.3", "biggest", "", true},
		{"not-a-version", "patch", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.version+"/"+tt.bump, func(t *testing.T) {
			got, err := Next(tt.version, tt.bump)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Next(%q, %q) = %q, want error", tt.version, tt.bump, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Next(%q, %q) error: %v", tt.version, tt.bump, err)
			}
			if got != tt.want {
				t.Errorf("Next(%q, %q) = %q, want %q", tt.version, tt.bump, got, tt.want)
			}
		})
	}
}
