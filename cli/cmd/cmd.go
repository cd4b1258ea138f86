package cmd

import (
	"context"
	"io"
	"os"
	"slices"

	"github.com/alecthomas/kong"

	"github.com/ardnew/consolecli/console"
	"github.com/ardnew/consolecli/log"
	"github.com/ardnew/consolecli/pkg"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type outputKey struct{}

// WithOutput returns a new context.Context directing command output to w.
// Commands write to [os.Stdout] when no output is set.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	w, ok := ctx.Value(outputKey{}).(io.Writer)
	if !ok || w == nil {
		return os.Stdout
	}

	return w
}

// Args is the raw argument tail handed to the parser.
// A leading "--" separating it from command flags is dropped.
type Args []string

// argv returns the raw arguments as a process receives them, headed by
// the program name.
func (a Args) argv() []string {
	tail := []string(a)
	if len(tail) > 0 && tail[0] == "--" {
		tail = tail[1:]
	}

	return slices.Concat([]string{pkg.Name}, tail)
}

// parser returns a console.Parser over a that writes to the command output.
func (a Args) parser(ctx context.Context) *console.Parser {
	return console.New(a.argv(),
		console.WithOutput(outputFrom(ctx)),
		console.WithLogger(log.Default()),
	)
}
