package cli

import (
	"context"
	"slices"

	"github.com/alecthomas/kong"

	"github.com/ardnew/consolecli/cli/cmd"
	"github.com/ardnew/consolecli/pkg"
)

// CLI is the top-level command-line interface for consolecli.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Init   cmd.Init   `cmd:"" help:"Initialize configuration file"`
	Opt    cmd.Opt    `cmd:"" help:"Print the value of a short option"`
	Flag   cmd.Flag   `cmd:"" help:"Report whether a long flag was given"`
	Target cmd.Target `cmd:"" help:"Print the target or one of its parts"`
	Eval   cmd.Eval   `cmd:"" help:"Evaluate an expression over parsed arguments"`

	Parse cmd.Parse `cmd:"" default:"withargs" help:"Print parsed arguments"`
}

// Run executes the consolecli CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logFormat/logLevel handles those flags
	// during normal parsing, but this early scan also catches boolean flags
	// like --log-pretty.
	cli.Log.scan(args)

	parser, err := newParser(&cli, exit, func() context.Context {
		return ctx
	})
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	defer cli.Log.start(ctx)()

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}

// newParser builds the kong application for cli. Commands receive the
// context returned by provide.
func newParser(
	cli *CLI,
	exit func(code int),
	provide func() context.Context,
) (*kong.Kong, error) {
	configFilePath := configPath(baseConfig + ".yaml")

	vars := kong.Vars{
		"version":            pkg.Version,
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  pkg.CacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	groups := slices.DeleteFunc(
		[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		func(g kong.Group) bool { return g.Key == "" },
	)

	return kong.New(cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(groups),
		kong.BindSingletonProvider(provide),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		kong.Configuration(loadYAML, configFilePath),
		vars,
	)
}
