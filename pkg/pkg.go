//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version of the module embedded at build time from
// the VERSION file, without surrounding whitespace.
var Version = strings.TrimSpace(version)

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text, default config paths,
	// and as the program name prepended to raw argument tails.
	Name = "consolecli"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Controller:action command-line argument parser"
)

