package console

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"sync"

	"github.com/ardnew/consolecli/log"
)

// Parser extracts a target, short options, and long flags from the raw
// arguments of a process invocation.
//
// Arguments are parsed once, on first use, and the result is reused by every
// later query. Query methods never return errors: a failure is written as a
// single diagnostic line and the query yields its zero result.
type Parser struct {
	parse func() (Options, error)
	config
	args []string
}

// New returns a Parser for args, given exactly as the operating environment
// provides them: args[0] is the program name and is not parsed.
//
// The args slice is copied; later changes to it do not affect the Parser.
func New(args []string, opts ...Option) *Parser {
	p := &Parser{
		config: apply(config{output: os.Stdout}, opts...),
		args:   slices.Clone(args),
	}

	p.parse = sync.OnceValues(p.parseOptions)

	return p
}

// Parse returns the parsed arguments.
//
// The first call performs the parse; every later call returns the same
// result, including the same error. The returned Options may be modified
// freely by the caller.
func (p *Parser) Parse() (Options, error) {
	o, err := p.parse()

	o.Values = maps.Clone(o.Values)
	o.Flags = slices.Clone(o.Flags)

	return o, err
}

// Opt returns the value of short option name.
// The second result is false, and a diagnostic is written, if the option
// was not given or the arguments could not be parsed.
func (p *Parser) Opt(name string) (string, bool) {
	o, err := p.parse()
	if err != nil {
		p.report(err)

		return "", false
	}

	v, ok := o.Lookup(name)
	if !ok {
		p.report(
			ErrUnknownOption.
				Messagef(name).
				With(slog.String("option", name)),
		)

		return "", false
	}

	return v, true
}

// LongOpt reports whether long flag name was given.
//
// A name that was instead given as a short option is reported as
// [ErrAmbiguousLongOption].
func (p *Parser) LongOpt(name string) bool {
	o, err := p.parse()
	if err != nil {
		p.report(err)

		return false
	}

	if o.HasFlag(name) {
		return true
	}

	if _, ok := o.Values[name]; ok {
		p.report(ErrAmbiguousLongOption.With(slog.String("option", name)))
	}

	return false
}

// Target returns the raw target token and whether one was given.
func (p *Parser) Target() (string, bool) {
	o, err := p.parse()
	if err != nil {
		p.report(err)

		return "", false
	}

	return o.Target, o.HasTarget
}

// Controller returns the first component of the target, or "" with a
// diagnostic if no target was given.
func (p *Parser) Controller() string { return p.segment(0) }

// Action returns the second component of the target, or "" with a
// diagnostic if no target was given or the target has no second component.
func (p *Parser) Action() string { return p.segment(1) }

// Write writes message followed by a newline to the Parser's output.
func (p *Parser) Write(message string) {
	writeLine(p.output, message)
}

// Write writes message followed by a newline to standard output.
func Write(message string) {
	writeLine(os.Stdout, message)
}

func writeLine(w io.Writer, message string) {
	_, _ = fmt.Fprintln(w, message)
}

// segment returns the component of the target at index.
func (p *Parser) segment(index int) string {
	o, err := p.parse()
	if err != nil {
		p.report(err)

		return ""
	}

	if !o.HasTarget {
		p.report(ErrNoTarget)

		return ""
	}

	parts := o.Split()
	if index >= len(parts) {
		p.report(
			ErrIncompleteTarget.
				Messagef(o.Target).
				With(slog.String("target", o.Target), slog.Int("index", index)),
		)

		return ""
	}

	return parts[index]
}

// parseOptions performs the single parsing pass over the arguments.
func (p *Parser) parseOptions() (Options, error) {
	var tokens []string
	if len(p.args) > 1 {
		tokens = p.args[1:]
	}

	o, err := assemble(scan(tokens).compacted())
	if err != nil {
		p.log().Debug("parse arguments failed", slog.Any("error", err))

		return Options{}, err
	}

	p.log().Debug("parsed arguments",
		slog.Int("tokens", len(tokens)),
		slog.Any("result", o),
	)

	return o, nil
}

// report writes the diagnostic line of err and records it on the logger.
func (p *Parser) report(err error) {
	p.Write(err.Error())
	p.log().Debug("argument query failed", slog.Any("error", err))
}

func (p *Parser) log() log.Logger {
	if p.logger != nil {
		return *p.logger
	}

	return log.Default()
}
