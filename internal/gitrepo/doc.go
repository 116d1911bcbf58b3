// Package gitrepo inspects the local git working tree for project metadata:
// the canonical repository URL derived from the remote listing, and author
// identity from the commit log. The git binary is invoked as an external
// process; the package never writes to the repository.
package gitrepo
