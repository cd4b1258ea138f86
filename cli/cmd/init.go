package cmd

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/consolecli/log"
	"github.com/ardnew/consolecli/pkg"
	"github.com/ardnew/consolecli/profile"
)

// configFileMode is the permission mode of a generated configuration file.
const configFileMode os.FileMode = 0o600

// configIndent is the number of spaces per indentation level of a generated
// configuration file.
const configIndent = 2

// Init generates a default configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) error {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		panic("internal error: kong context undefined")
	}

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	_, err := os.Stat(confPath)
	if err == nil && !i.Force {
		return pkg.ErrWriteConfig.Wrapf("%s", confPath).Wrap(pkg.ErrFileExists)
	}

	values := flagValues(ktx)

	b, err := yaml.MarshalWithOptions(values, yaml.Indent(configIndent))
	if err != nil {
		return pkg.ErrWriteConfig.Wrap(pkg.ErrYAMLMarshal.Wrap(err))
	}

	err = os.WriteFile(confPath, b, configFileMode)
	if err != nil {
		return pkg.ErrWriteConfig.Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath),
		slog.Int("flags", len(values)),
	)

	return nil
}

// flagValues maps each configurable flag of the application to its current
// value. Flags with a zero value are omitted.
func flagValues(ktx *kong.Context) map[string]any {
	ignore := []string{"help", "version", profile.Tag}

	values := make(map[string]any)

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(ignore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		switch v := ktx.FlagValue(flag).(type) {
		case nil:
		case string:
			if v != "" {
				values[flag.Name] = v
			}

		default:
			values[flag.Name] = v
		}
	}

	return values
}
