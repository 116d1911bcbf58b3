package shipconf

import (
	"strings"
	"testing"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := Config{
		"project_name": "widget",
		"repository":   "https://github.com/acme/widget.git",
		"homepage":     "https://github.com/acme/widget",
		"bugtracker":   "https://github.com/acme/widget/issues",
		"license_name": "Artistic License 2.0",
		"license_url":  "http://www.opensource.org/licenses/artistic-license-2.0",
		"version":      "1.2.3",
	}

	result, err := Validate(cfg)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("Valid = false, issues: %+v", result.Issues)
	}
}

func TestValidate_BadRepository(t *testing.T) {
	cfg := Config{
		"project_name": "widget",
		"repository":   "git@github.com:acme/widget.git",
	}

	result, err := Validate(cfg)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("Valid = true for SSH-style repository URL")
	}

	found := false
	for _, issue := range result.Issues {
		if strings.Contains(issue.Path, "repository") {
			found = true
		}
	}
	if !found {
		t.Errorf("no issue points at /repository: %+v", result.Issues)
	}
}

func TestValidate_BadVersion(t *testing.T) {
	cfg := Config{"version": "next-release"}

	result, err := Validate(cfg)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("Valid = true for non-semver version")
	}
}

func TestValidate_UnknownKeysAllowed(t *testing.T) {
	cfg := Config{"new_version_format": "v%v", "build_script": "make dist"}

	result, err := Validate(cfg)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("Valid = false for plugin-specific keys, issues: %+v", result.Issues)
	}
}
