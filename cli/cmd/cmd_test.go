package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ardnew/consolecli/console"
	"github.com/ardnew/consolecli/pkg"
)

type runner interface {
	Run(ctx context.Context) error
}

func run(t *testing.T, r runner) (string, error) {
	t.Helper()

	var buf bytes.Buffer

	err := r.Run(WithOutput(context.Background(), &buf))

	return buf.String(), err
}

func TestArgs_argv(t *testing.T) {
	tests := []struct {
		name string
		args Args
		want []string
	}{
		{"empty", nil, []string{pkg.Name}},
		{"separator", Args{"--", "-x", "1"}, []string{pkg.Name, "-x", "1"}},
		{"no separator", Args{"user:create"}, []string{pkg.Name, "user:create"}},
		{"inner separator", Args{"a", "--"}, []string{pkg.Name, "a", "--"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.args.argv()); diff != "" {
				t.Errorf("argv() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOutputFrom_Default(t *testing.T) {
	if outputFrom(context.Background()) == nil {
		t.Fatal("outputFrom() = nil, want os.Stdout")
	}

	if kongContextFrom(context.Background()) != nil {
		t.Fatal("kongContextFrom() != nil for empty context")
	}
}

func TestParse_JSON(t *testing.T) {
	out, err := run(t, &Parse{
		Format: FormatJSON,
		Args:   Args{"--", "-x", "1", "--verbose", "user:create"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var got result
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}

	want := result{
		Options:    map[string]string{"x": "1"},
		Target:     "user:create",
		Controller: "user",
		Action:     "create",
		Flags:      []string{"verbose"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_YAML(t *testing.T) {
	out, err := run(t, &Parse{
		Format: FormatYAML,
		Args:   Args{"--", "-n", "joe", "user"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var got result
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}

	want := result{
		Options:    map[string]string{"n": "joe"},
		Target:     "user",
		Controller: "user",
		Flags:      []string{},
	}

	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Text(t *testing.T) {
	out, err := run(t, &Parse{
		Format: FormatText,
		Args:   Args{"--", "-b", "2", "-a", "1", "--dry", "job:run"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var got [][]string
	for line := range strings.Lines(out) {
		got = append(got, strings.Fields(line))
	}

	want := [][]string{
		{"target", "job:run"},
		{"controller", "job"},
		{"action", "run"},
		{"-a", "1"},
		{"-b", "2"},
		{"--dry", "true"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("text output mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_InvalidFormat(t *testing.T) {
	_, err := run(t, &Parse{Format: "toml"})
	if !errors.Is(err, pkg.ErrInvalidFormat) {
		t.Fatalf("Run() error = %v, want %v", err, pkg.ErrInvalidFormat)
	}
}

func TestOpt(t *testing.T) {
	tests := []struct {
		name string
		opt  Opt
		want string
	}{
		{
			name: "present",
			opt:  Opt{Name: "x", Args: Args{"--", "-x", "1"}},
			want: "1\n",
		},
		{
			name: "absent",
			opt:  Opt{Name: "y", Args: Args{"--", "-x", "1"}},
			want: "No option with name \"y\" found.\n",
		},
		{
			name: "absent with default",
			opt:  Opt{Name: "y", Default: "9", Args: Args{"--", "-x", "1"}},
			want: "No option with name \"y\" found.\n9\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, &tt.opt)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFlag(t *testing.T) {
	tests := []struct {
		name string
		flag Flag
		want string
	}{
		{"given", Flag{Name: "verbose", Args: Args{"--", "--verbose"}}, "true\n"},
		{"absent", Flag{Name: "quiet", Args: Args{"--", "--verbose"}}, "false\n"},
		{
			name: "short option",
			flag: Flag{Name: "x", Args: Args{"--", "-x", "1"}},
			want: "Long option was found in regular options set.\nfalse\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, &tt.flag)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTarget(t *testing.T) {
	tests := []struct {
		name string
		part string
		args Args
		want string
	}{
		{"raw", PartRaw, Args{"--", "user:create"}, "user:create\n"},
		{"controller", PartController, Args{"--", "user:create"}, "user\n"},
		{"action", PartAction, Args{"--", "user:create"}, "create\n"},
		{"raw missing", PartRaw, Args{"--", "--verbose"}, "No target given.\n"},
		{"controller missing", PartController, nil, "No target given.\n"},
		{
			name: "action incomplete",
			part: PartAction,
			args: Args{"--", "user"},
			want: "Incomplete target \"user\" (expected controller:action).\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, &Target{Part: tt.part, Args: tt.args})
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEval(t *testing.T) {
	args := Args{"--", "-n", "joe", "--force", "user:create"}

	tests := []struct {
		expr string
		want string
	}{
		{`controller + "/" + action`, "user/create\n"},
		{`opts["n"]`, "joe\n"},
		{`has("force")`, "true\n"},
		{`has("dry")`, "false\n"},
		{`len(flags)`, "1\n"},
		{`target == "user:create" && opts.n == "joe"`, "true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := run(t, &Eval{Expr: tt.expr, Args: args})
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEval_Errors(t *testing.T) {
	_, err := run(t, &Eval{Expr: `undefined_name +`})
	if !errors.Is(err, pkg.ErrExprCompile) {
		t.Errorf("Run() error = %v, want %v", err, pkg.ErrExprCompile)
	}

	_, err = run(t, &Eval{Expr: `int(opts["z"]) + 1`, Args: Args{"--", "-z", "abc"}})
	if !errors.Is(err, pkg.ErrExprEvaluate) {
		t.Errorf("Run() error = %v, want %v", err, pkg.ErrExprEvaluate)
	}
}

func TestSimilar(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		candidates []string
		want       []string
	}{
		{"shortened query", "vb", []string{"verbose", "dry"}, []string{"verbose"}},
		{"truncated argument", "verbose", []string{"verbos", "quiet"}, []string{"verbos"}},
		{"no match", "zzz", []string{"verbose"}, nil},
		{"both directions once", "force", []string{"force"}, []string{"force"}},
		{"limited", "a", []string{"a1", "a2", "a3", "a4"}, []string{"a1", "a2", "a3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := similar(tt.query, tt.candidates)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("similar() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// failingParser reports err from every parse.
type failingParser struct {
	err   error
	lines []string
}

func (f *failingParser) Parse() (console.Options, error) { return console.Options{}, f.err }

func (f *failingParser) Write(message string) { f.lines = append(f.lines, message) }

func TestParse_Failure(t *testing.T) {
	cause := console.ErrCountMismatch

	t.Run("diagnostic", func(t *testing.T) {
		fp := &failingParser{err: cause}

		var buf bytes.Buffer

		err := (&Parse{Format: FormatJSON}).print(WithOutput(context.Background(), &buf), fp)
		if err != nil {
			t.Fatalf("print() error = %v, want nil", err)
		}

		if diff := cmp.Diff([]string{cause.Error()}, fp.lines); diff != "" {
			t.Errorf("diagnostic mismatch (-want +got):\n%s", diff)
		}

		if buf.Len() != 0 {
			t.Errorf("unexpected result output: %q", buf.String())
		}
	})

	t.Run("strict", func(t *testing.T) {
		fp := &failingParser{err: cause}

		err := (&Parse{Format: FormatJSON, Strict: true}).print(context.Background(), fp)
		if !errors.Is(err, pkg.ErrParseArguments) {
			t.Errorf("print() error = %v, want %v", err, pkg.ErrParseArguments)
		}

		if !errors.Is(err, console.ErrCountMismatch) {
			t.Errorf("print() error = %v, want cause %v", err, console.ErrCountMismatch)
		}

		if len(fp.lines) != 0 {
			t.Errorf("strict mode wrote diagnostics: %q", fp.lines)
		}
	})
}
