package cmd

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"strconv"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/consolecli/console"
	"github.com/ardnew/consolecli/log"
)

// maxSuggestions limits the number of similar names logged for a failed
// lookup.
const maxSuggestions = 3

// Opt prints the value of a short option.
type Opt struct {
	Name    string `arg:"" help:"Short option name."`
	Default string `help:"Value printed when the option is absent." short:"d"`

	Args Args `arg:"" help:"Raw arguments (after --)." optional:"" passthrough:""`
}

// Run executes the opt command.
func (o *Opt) Run(ctx context.Context) error {
	parser := o.Args.parser(ctx)

	value, ok := parser.Opt(o.Name)
	if ok {
		parser.Write(value)

		return nil
	}

	if opts, err := parser.Parse(); err == nil {
		suggest(ctx, "option", o.Name, opts.Names())
	}

	if o.Default != "" {
		parser.Write(o.Default)
	}

	return nil
}

// Flag prints whether a long flag was given.
type Flag struct {
	Name string `arg:"" help:"Long flag name."`

	Args Args `arg:"" help:"Raw arguments (after --)." optional:"" passthrough:""`
}

// Run executes the flag command.
func (f *Flag) Run(ctx context.Context) error {
	parser := f.Args.parser(ctx)

	ok := parser.LongOpt(f.Name)
	if !ok {
		if opts, err := parser.Parse(); err == nil {
			suggest(ctx, "flag", f.Name, opts.Flags)
		}
	}

	parser.Write(strconv.FormatBool(ok))

	return nil
}

// Target parts printed by the target command.
const (
	PartRaw        = "raw"
	PartController = "controller"
	PartAction     = "action"
)

// Target prints the target or one of its components.
type Target struct {
	Part string `default:"raw" enum:"raw,controller,action" help:"Target part to print (${enum})." short:"t"`

	Args Args `arg:"" help:"Raw arguments (after --)." optional:"" passthrough:""`
}

// Run executes the target command.
func (t *Target) Run(ctx context.Context) error {
	parser := t.Args.parser(ctx)

	var part string

	switch t.Part {
	case PartController:
		part = parser.Controller()

	case PartAction:
		part = parser.Action()

	default:
		target, ok := parser.Target()
		if !ok {
			if _, err := parser.Parse(); err == nil {
				parser.Write(console.ErrNoTarget.Error())
			}

			return nil
		}

		part = target
	}

	if part != "" {
		parser.Write(part)
	}

	return nil
}

// suggest logs the candidates most similar to name.
func suggest(ctx context.Context, kind, name string, candidates []string) {
	names := similar(name, candidates)
	if len(names) == 0 {
		return
	}

	log.WarnContext(ctx, "unknown "+kind,
		slog.String("name", name),
		slog.Any("similar", names),
	)
}

// similar returns up to maxSuggestions candidates that fuzzy-match name in
// either direction, best matches first. A candidate matches when name is a
// subsequence of it (a shortened query) or it is a subsequence of name (a
// truncated or mistyped argument).
func similar(name string, candidates []string) []string {
	names := make([]string, 0, maxSuggestions)

	add := func(s string) {
		if len(names) < maxSuggestions && !slices.Contains(names, s) {
			names = append(names, s)
		}
	}

	for _, m := range fuzzy.Find(name, candidates) {
		add(m.Str)
	}

	var reverse fuzzy.Matches

	for i, c := range candidates {
		for _, m := range fuzzy.Find(c, []string{name}) {
			m.Str, m.Index = c, i
			reverse = append(reverse, m)
		}
	}

	sort.Stable(reverse)

	for _, m := range reverse {
		add(m.Str)
	}

	return names
}
