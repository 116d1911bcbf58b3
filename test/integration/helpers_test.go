//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// setupRepo creates a temp git repository with one commit and a github
// remote, returning its path. Tests are skipped when git is unavailable.
func setupRepo(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found on PATH")
	}

	dir := t.TempDir()
	git(t, dir, "init")
	git(t, dir, "config", "user.name", "Jan Henning Thorsen")
	git(t, dir, "config", "user.email", "jan@example.com")
	git(t, dir, "remote", "add", "origin", "git@github.com:acme/widget.git")

	writeFile(t, filepath.Join(dir, "README.md"), "# widget\n")
	git(t, dir, "add", "README.md")
	git(t, dir, "commit", "-m", "initial commit")

	return dir
}

// git runs a git subcommand in dir, failing the test on error.
func git(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return string(out)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
