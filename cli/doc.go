// Package cli contains the command line interface for consolecli.
//
// # Usage
//
// Raw arguments follow "--" and are parsed as a process would receive them,
// with the program name prepended:
//
//	consolecli -- -n joe --force user:create
//	consolecli parse --format yaml -- -n joe user:create
//	consolecli target --part controller -- user:create
//
// # Configuration
//
// Flag defaults are read from config.yaml, then config.json, in the
// configuration directory (for example ~/.config/consolecli). Keys are flag
// names with hyphens or underscores:
//
//	log-level: debug
//	log_format: json
//
// Command-line flags override config file values. The init command writes
// the current flag values to config.yaml.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp layout (RFC3339, Kitchen, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Style text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag.
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/consolecli/pprof)
//
// For example:
//
//	go build -tags pprof -o consolecli .
//	consolecli --pprof-mode=cpu -- user:create
package cli
