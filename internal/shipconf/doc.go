// Package shipconf loads and saves the per-project .git-ship.conf file: a
// flat string-to-string map written as one "key = value" pair per line. The
// format defines no sections, comments, or escaping; lines that do not match
// the pair shape are ignored and later duplicate keys overwrite earlier ones.
// Values are never typed at this boundary — plugins interpret the subset of
// keys they understand. Validate checks a resolved map against an embedded
// JSON schema for the doctor command.
package shipconf
