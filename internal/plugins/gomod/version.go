package gomod

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Normalize parses a version string ("v" prefix tolerated) and returns its
// canonical semver form.
func Normalize(version string) (string, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return "", fmt.Errorf("invalid version %q: %w", version, err)
	}
	return v.String(), nil
}

// Next bumps a version by the named component: "major", "minor", or "patch".
// An empty bump defaults to patch.
func Next(version, bump string) (string, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return "", fmt.Errorf("invalid version %q: %w", version, err)
	}

	var next semver.Version
	switch bump {
	case "major":
		next = v.IncMajor()
	case "minor":
		next = v.IncMinor()
	case "patch", "":
		next = v.IncPatch()
	default:
		return "", fmt.Errorf("invalid version_bump %q: expected major, minor, or patch", bump)
	}
	return next.String(), nil
}
