// Package gomod is the git-ship plugin for Go modules. Init derives the
// project name from the go.mod module path, build runs go vet and go build,
// test runs the module's test suite, and ship tags the release and pushes
// the tag to origin. The Go module proxy picks new versions up from the
// pushed tag, so no registry upload step exists.
package gomod
