// Package cli wires the cobra command tree: init, build, test, ship,
// doctor, and version. Each lifecycle command resolves the project
// directory, selects a plugin (explicitly, from user settings, or by
// ecosystem detection), and invokes the corresponding lifecycle hook.
package cli
