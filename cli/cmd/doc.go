// Package cmd implements the subcommands of the consolecli executable.
//
// Each argument-consuming command receives the raw argument tail after "--"
// and hands it, headed by the program name, to a [console.Parser]:
//
//	consolecli parse --format json -- -x 1 --verbose user:create
//	consolecli opt x -- -x 1 user:create
//	consolecli eval 'controller + "/" + action' -- user:create
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)
