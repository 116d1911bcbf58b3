// Package lazy implements memoized, per-instance fields. A Field is declared
// with a name and a compute function; the first Get invokes the function and
// caches its result, later Gets return the cached value, and Set overwrites
// the cache without ever calling the compute function. Project metadata
// (config, project name, repository URL) is built on these fields so that
// expensive work — file reads, git subprocesses — happens at most once per
// project instance.
package lazy
