package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/consolecli/console"
	"github.com/ardnew/consolecli/log"
	"github.com/ardnew/consolecli/pkg"
)

// Output formats of the parse command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Parse prints the parse result of the raw arguments.
type Parse struct {
	Format string `default:"text" enum:"text,json,yaml" help:"Output format (${enum})." short:"f"`
	Strict bool   `help:"Fail when the arguments are malformed."`

	Args Args `arg:"" help:"Raw arguments (after --)." optional:"" passthrough:""`
}

// result is the printed form of a parse result.
type result struct {
	Options    map[string]string `json:"options"              yaml:"options"`
	Target     string            `json:"target,omitempty"     yaml:"target,omitempty"`
	Controller string            `json:"controller,omitempty" yaml:"controller,omitempty"`
	Action     string            `json:"action,omitempty"     yaml:"action,omitempty"`
	Flags      []string          `json:"flags"                yaml:"flags"`
}

func makeResult(o console.Options) result {
	r := result{
		Options: o.Values,
		Target:  o.Target,
		Flags:   o.Flags,
	}

	if parts := o.Split(); len(parts) > 0 {
		r.Controller = parts[0]
		if len(parts) > 1 {
			r.Action = parts[1]
		}
	}

	if r.Options == nil {
		r.Options = map[string]string{}
	}

	if r.Flags == nil {
		r.Flags = []string{}
	}

	return r
}

// argParser is the part of [console.Parser] used to print a parse result.
type argParser interface {
	Parse() (console.Options, error)
	Write(message string)
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context) error {
	return p.print(ctx, p.Args.parser(ctx))
}

// print writes the parse result of parser in the configured format.
// A parse failure is written as a diagnostic, or returned in strict mode.
func (p *Parse) print(ctx context.Context, parser argParser) error {
	opts, err := parser.Parse()
	if err != nil {
		if p.Strict {
			return pkg.ErrParseArguments.Wrap(err)
		}

		parser.Write(err.Error())

		return nil
	}

	log.DebugContext(ctx, "parse",
		slog.String("format", p.Format),
		slog.Any("result", opts),
	)

	return writeResult(outputFrom(ctx), p.Format, makeResult(opts))
}

func writeResult(w io.Writer, format string, r result) error {
	switch format {
	case FormatText:
		return writeText(w, r)

	case FormatJSON:
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return pkg.ErrJSONMarshal.Wrap(err)
		}

		_, err = fmt.Fprintln(w, string(b))

		return err

	case FormatYAML:
		b, err := yaml.Marshal(r)
		if err != nil {
			return pkg.ErrYAMLMarshal.Wrap(err)
		}

		_, err = w.Write(b)

		return err

	default:
		return pkg.ErrInvalidFormat.Wrapf("%q (valid: %s)", format,
			strings.Join([]string{FormatText, FormatJSON, FormatYAML}, ", "))
	}
}

// labelWidth is the width of the label column in text output.
const labelWidth = 12

// writeText writes one labeled line per component of r.
// Missing components are omitted.
func writeText(w io.Writer, r result) error {
	ren := lipgloss.NewRenderer(w)
	label := ren.NewStyle().Width(labelWidth).Foreground(lipgloss.Color("8"))
	value := ren.NewStyle().Foreground(lipgloss.Color("6"))

	var sb strings.Builder

	line := func(k, v string) {
		sb.WriteString(label.Render(k))
		sb.WriteString(value.Render(v))
		sb.WriteByte('\n')
	}

	if r.Target != "" {
		line("target", r.Target)
	}

	if r.Controller != "" {
		line("controller", r.Controller)
	}

	if r.Action != "" {
		line("action", r.Action)
	}

	for _, name := range slices.Sorted(maps.Keys(r.Options)) {
		line("-"+name, r.Options[name])
	}

	for _, flag := range r.Flags {
		line("--"+flag, "true")
	}

	_, err := io.WriteString(w, sb.String())

	return err
}
