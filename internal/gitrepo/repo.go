package gitrepo

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

// hostMarker is the hosting provider the remote heuristic recognizes.
const hostMarker = "github.com"

// remoteFieldSep splits a "name  url (direction)" remote line into fields.
// The url's ":" separator and the tabular whitespace both act as delimiters,
// so for an SSH-shaped remote (git@github.com:owner/name.git) field 3 is the
// owner/name.git path. HTTPS-shaped remotes split differently and come out
// mangled; the heuristic assumes the SSH convention.
var remoteFieldSep = regexp.MustCompile(`:|\s+`)

// NotFoundError reports that no repository URL could be derived from the
// remote listing.
type NotFoundError struct {
	Dir string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no repository URL found in %s", e.Dir)
}

// Repo inspects a git working tree rooted at Dir.
type Repo struct {
	Dir string
}

// New returns a Repo bound to the given working tree directory.
func New(dir string) *Repo { return &Repo{Dir: dir} }

// IsWorkTree reports whether Dir contains a .git entry.
func (r *Repo) IsWorkTree() bool {
	_, err := os.Stat(filepath.Join(r.Dir, ".git"))
	return err == nil
}

// RemoteURL derives the canonical HTTPS repository URL from `git remote -v`.
// The first remote line mentioning github.com is split on ":" or whitespace
// runs, and the third field is taken as the owner/name.git path. This is a
// best-effort parse of git's tabular remote listing, not a URL parser; it
// assumes the conventional github remote shapes.
func (r *Repo) RemoteURL() (string, error) {
	out, err := r.git("remote", "-v")
	if err != nil {
		return "", err
	}
	return remoteURLFromListing(r.Dir, out)
}

// remoteURLFromListing applies the remote heuristic to raw `git remote -v`
// output.
func remoteURLFromListing(dir, listing string) (string, error) {
	for _, line := range strings.Split(listing, "\n") {
		if !strings.Contains(line, hostMarker) {
			continue
		}
		fields := remoteFieldSep.Split(line, -1)
		if len(fields) < 3 {
			continue
		}
		return fmt.Sprintf("https://%s/%s", hostMarker, fields[2]), nil
	}
	return "", &NotFoundError{Dir: dir}
}

// LatestTag returns the most recent reachable tag, or the empty string when
// the repository has no tags.
func (r *Repo) LatestTag() (string, error) {
	out, err := r.git("describe", "--tags", "--abbrev=0")
	if err != nil {
		// No tags yet is a normal state for a project that never shipped.
		if strings.Contains(err.Error(), "cannot describe") || strings.Contains(err.Error(), "No names found") {
			return "", nil
		}
		return "", err
	}
	line, _, _ := strings.Cut(out, "\n")
	return line, nil
}

// Author returns the author of the most recent commit, formatted with the
// given git log format string. "%an" expands to the author name and "%ae"
// to the author email.
func (r *Repo) Author(format string) (string, error) {
	out, err := r.git("log", "-1", "--format="+format)
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(out, "\n")
	return line, nil
}

// git runs a git subcommand in the repository directory and returns its
// combined output.
func (r *Repo) git(args ...string) (string, error) {
	if err := ensureGit(); err != nil {
		return "", err
	}

	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %w\n%s", strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return string(output), nil
}

// ensureGit verifies the git binary is available on PATH.
func ensureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is required but was not found on PATH: %w", err)
	}
	return nil
}
