// Package build holds the engine's version information. This file is
// maintained by hand and reports "dev". The internal/generator/build
// program renders the same declaration with a git describe/rev-parse
// version into an info.go file in its own working directory; it does
// not update this file.
package build

// Version is the engine version string reported in the UCI `id name`
// line.
var Version = "dev"
