// Package ship is the extensibility core of git-ship. A Project owns the
// lazily resolved metadata (config, project name, repository URL) and the
// utilities plugins build on (Run, Author). The Hooks interface is the
// lifecycle contract — init, build, test, ship — and Base supplies the
// default behavior a plugin inherits by embedding. Plugins register
// themselves by name so the CLI can select one explicitly or by detection.
package ship
