package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"

	"github.com/ardnew/consolecli/console"
	"github.com/ardnew/consolecli/log"
	"github.com/ardnew/consolecli/pkg"
)

// Eval evaluates an expression over the parse result of the raw arguments.
//
// The expression environment contains:
//
//	target      string             raw target, or ""
//	controller  string             first target component, or ""
//	action      string             second target component, or ""
//	opts        map[string]string  short options
//	flags       []string           long flags in order given
//	has(name)   bool               whether long flag name was given
type Eval struct {
	Expr string `arg:"" help:"Expression to evaluate."`

	Args Args `arg:"" help:"Raw arguments (after --)." optional:"" passthrough:""`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) error {
	parser := e.Args.parser(ctx)

	opts, err := parser.Parse()
	if err != nil {
		parser.Write(err.Error())

		return nil
	}

	env := makeEnv(opts)

	program, err := expr.Compile(e.Expr, expr.Env(env))
	if err != nil {
		return pkg.ErrExprCompile.Wrap(err)
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return pkg.ErrExprEvaluate.Wrap(err)
	}

	log.DebugContext(ctx, "eval",
		slog.String("expr", e.Expr),
		slog.Any("result", out),
	)

	parser.Write(fmt.Sprint(out))

	return nil
}

func makeEnv(opts console.Options) map[string]any {
	r := makeResult(opts)

	return map[string]any{
		"target":     r.Target,
		"controller": r.Controller,
		"action":     r.Action,
		"opts":       r.Options,
		"flags":      r.Flags,
		"has":        opts.HasFlag,
	}
}
