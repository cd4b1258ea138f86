package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/consolecli/pkg"
)

// loadYAML is a [kong.ConfigurationLoader] that reads a flat YAML mapping of
// flag names to values.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(loadYAML, "/path/to/config.yaml")
//
// Keys are flag names, with hyphens or underscores:
//
//	log-level: debug
//	log_format: json
//	log-pretty: false
//
// This configuration will be applied to Kong flags:
//
//	--log-level=debug
//	--log-format=json
//	--no-log-pretty
//
// Command-line flags override config file values. An empty file yields an
// empty configuration.
func loadYAML(r io.Reader) (kong.Resolver, error) {
	var raw map[string]any

	err := yaml.NewDecoder(r).Decode(&raw)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, pkg.ErrReadConfig.Wrap(err)
	}

	conf := make(config, len(raw))
	for key, value := range raw {
		conf[key] = scalar(value)
	}

	return conf, nil
}

// scalar converts a decoded YAML value to the form kong expects: booleans
// are kept, every other scalar is reparsed by kong from its string form.
func scalar(value any) any {
	switch v := value.(type) {
	case nil, bool, string:
		return v

	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = fmt.Sprint(item)
		}

		return strings.Join(items, ",")

	default:
		return fmt.Sprint(v)
	}
}

// config implements [kong.Resolver] for flat configuration maps.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but config keys
	// may use underscores. Try both forms.
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil
}
