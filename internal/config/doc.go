// Package config manages user-level settings stored at ~/.gitship/config.yaml,
// overridable through GIT_SHIP_* environment variables: the debug flag, the
// default plugin, and the license applied to projects that declare none.
// Per-project metadata lives in .git-ship.conf and is handled by shipconf.
package config
