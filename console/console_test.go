package console

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ardnew/consolecli/log"
)

// newTestParser returns a Parser writing diagnostics to the returned buffer
// and discarding structured log records.
func newTestParser(args ...string) (*Parser, *bytes.Buffer) {
	var buf bytes.Buffer

	p := New(
		append([]string{"prog"}, args...),
		WithOutput(&buf),
		WithLogger(log.Make(nil)),
	)

	return p, &buf
}

func TestParser_WellFormed(t *testing.T) {
	p, out := newTestParser("ctrl:act", "-x", "1", "--verbose")

	if got := p.Controller(); got != "ctrl" {
		t.Errorf("Controller() = %q, want %q", got, "ctrl")
	}

	if got := p.Action(); got != "act" {
		t.Errorf("Action() = %q, want %q", got, "act")
	}

	if got, ok := p.Opt("x"); !ok || got != "1" {
		t.Errorf("Opt(x) = %q, %v, want %q, true", got, ok, "1")
	}

	if !p.LongOpt("verbose") {
		t.Error("LongOpt(verbose) = false, want true")
	}

	if p.LongOpt("missing") {
		t.Error("LongOpt(missing) = true, want false")
	}

	if out.Len() != 0 {
		t.Errorf("unexpected diagnostics: %q", out.String())
	}
}

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Options
	}{
		{
			name: "empty",
			args: nil,
			want: Options{},
		},
		{
			name: "target only",
			args: []string{"user:create"},
			want: Options{Target: "user:create", HasTarget: true},
		},
		{
			name: "space separated",
			args: []string{"ctrl:act", "-x", "1", "--verbose"},
			want: Options{
				Target:    "ctrl:act",
				HasTarget: true,
				Values:    map[string]string{"x": "1"},
				Flags:     []string{"verbose"},
			},
		},
		{
			name: "equals separated",
			args: []string{"ctrl:act", "-x=1", "--verbose"},
			want: Options{
				Target:    "ctrl:act",
				HasTarget: true,
				Values:    map[string]string{"x": "1"},
				Flags:     []string{"verbose"},
			},
		},
		{
			name: "zero value",
			args: []string{"-x", "0", "job"},
			want: Options{
				Target:    "job",
				HasTarget: true,
				Values:    map[string]string{"x": "0"},
			},
		},
		{
			name: "multi-letter option name",
			args: []string{"-name=joe", "-n", "7"},
			want: Options{Values: map[string]string{"name": "joe", "n": "7"}},
		},
		{
			name: "duplicate option keeps last",
			args: []string{"-x", "1", "-x", "2"},
			want: Options{Values: map[string]string{"x": "2"}},
		},
		{
			name: "target after options",
			args: []string{"-x", "1", "--dry", "ctrl:act"},
			want: Options{
				Target:    "ctrl:act",
				HasTarget: true,
				Values:    map[string]string{"x": "1"},
				Flags:     []string{"dry"},
			},
		},
		{
			name: "first target wins",
			args: []string{"first:a", "second:b"},
			want: Options{Target: "first:a", HasTarget: true},
		},
		{
			name: "repeated long flag",
			args: []string{"--v", "--w", "--v"},
			want: Options{Flags: []string{"v", "w", "v"}},
		},
		{
			name: "option missing value",
			args: []string{"-x", "-y", "1"},
			want: Options{
				Target:    "x",
				HasTarget: true,
				Values:    map[string]string{"y": "1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestParser(tt.args...)

			got, err := p.Parse()
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}

			if out.Len() != 0 {
				t.Errorf("unexpected diagnostics: %q", out.String())
			}
		})
	}
}

func TestParser_EqualsMatchesSpace(t *testing.T) {
	spaced, _ := newTestParser("ctrl:act", "-x", "1")
	equals, _ := newTestParser("ctrl:act", "-x=1")

	a, _ := spaced.Opt("x")
	b, _ := equals.Opt("x")

	if a != b {
		t.Errorf("Opt(x): %q (spaced) != %q (equals)", a, b)
	}
}

func TestParser_MissingValue(t *testing.T) {
	p, out := newTestParser("-x", "-y", "1")

	if got, ok := p.Opt("x"); ok || got != "" {
		t.Errorf("Opt(x) = %q, %v, want absent", got, ok)
	}

	want := "No option with name \"x\" found.\n"
	if out.String() != want {
		t.Errorf("diagnostics = %q, want %q", out.String(), want)
	}

	if got, ok := p.Opt("y"); !ok || got != "1" {
		t.Errorf("Opt(y) = %q, %v, want %q, true", got, ok, "1")
	}
}

func TestParser_NoTarget(t *testing.T) {
	p, out := newTestParser("-x", "1")

	if got := p.Controller(); got != "" {
		t.Errorf("Controller() = %q, want empty", got)
	}

	if got := p.Action(); got != "" {
		t.Errorf("Action() = %q, want empty", got)
	}

	want := "No target given.\nNo target given.\n"
	if out.String() != want {
		t.Errorf("diagnostics = %q, want %q", out.String(), want)
	}

	if target, ok := p.Target(); ok || target != "" {
		t.Errorf("Target() = %q, %v, want absent", target, ok)
	}
}

func TestParser_IncompleteTarget(t *testing.T) {
	p, out := newTestParser("ctrl", "-x", "1")

	if got := p.Controller(); got != "ctrl" {
		t.Errorf("Controller() = %q, want %q", got, "ctrl")
	}

	if out.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %q", out.String())
	}

	if got := p.Action(); got != "" {
		t.Errorf("Action() = %q, want empty", got)
	}

	want := "Incomplete target \"ctrl\" (expected controller:action).\n"
	if out.String() != want {
		t.Errorf("diagnostics = %q, want %q", out.String(), want)
	}
}

func TestParser_ExtraTargetComponents(t *testing.T) {
	p, out := newTestParser("a:b:c")

	if got := p.Controller(); got != "a" {
		t.Errorf("Controller() = %q, want %q", got, "a")
	}

	if got := p.Action(); got != "b" {
		t.Errorf("Action() = %q, want %q", got, "b")
	}

	if out.Len() != 0 {
		t.Errorf("unexpected diagnostics: %q", out.String())
	}
}

func TestParser_AmbiguousLongOption(t *testing.T) {
	p, out := newTestParser("ctrl:act", "-v", "1")

	if p.LongOpt("v") {
		t.Error("LongOpt(v) = true, want false")
	}

	want := ErrAmbiguousLongOption.Error() + "\n"
	if out.String() != want {
		t.Errorf("diagnostics = %q, want %q", out.String(), want)
	}
}

func TestParser_Idempotent(t *testing.T) {
	p, out := newTestParser("ctrl:act", "-x", "1", "--verbose")

	for range 3 {
		if got, ok := p.Opt("x"); !ok || got != "1" {
			t.Fatalf("Opt(x) = %q, %v, want %q, true", got, ok, "1")
		}

		if !p.LongOpt("verbose") {
			t.Fatal("LongOpt(verbose) = false, want true")
		}
	}

	first, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	first.Values["x"] = "changed"
	first.Flags[0] = "changed"

	second, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if second.Values["x"] != "1" || second.Flags[0] != "verbose" {
		t.Errorf("cached result modified through Parse(): %+v", second)
	}

	if out.Len() != 0 {
		t.Errorf("unexpected diagnostics: %q", out.String())
	}
}

func TestParser_ParsesOnce(t *testing.T) {
	p, _ := newTestParser("ctrl:act")

	calls := 0
	p.parse = sync.OnceValues(func() (Options, error) {
		calls++

		return p.parseOptions()
	})

	p.Controller()
	p.Action()
	p.Opt("x")
	p.LongOpt("y")

	if calls != 1 {
		t.Errorf("parse ran %d times, want 1", calls)
	}
}

func TestParser_DoesNotModifyArgs(t *testing.T) {
	args := []string{"prog", "ctrl:act", "-x", "1"}
	saved := strings.Join(args, " ")

	p := New(args, WithOutput(nil), WithLogger(log.Make(nil)))
	args[1] = "other:thing"

	if got := p.Controller(); got != "ctrl" {
		t.Errorf("Controller() = %q, want %q", got, "ctrl")
	}

	args[1] = "ctrl:act"
	if strings.Join(args, " ") != saved {
		t.Errorf("args modified: %q", args)
	}
}

func TestParser_ParseFailure(t *testing.T) {
	p, out := newTestParser("ctrl:act", "-x", "1")

	p.parse = sync.OnceValues(func() (Options, error) {
		return Options{}, ErrCountMismatch
	})

	if got, ok := p.Opt("x"); ok || got != "" {
		t.Errorf("Opt(x) = %q, %v, want absent", got, ok)
	}

	if p.LongOpt("x") {
		t.Error("LongOpt(x) = true, want false")
	}

	if got := p.Controller(); got != "" {
		t.Errorf("Controller() = %q, want empty", got)
	}

	line := ErrCountMismatch.Error() + "\n"
	if want := strings.Repeat(line, 3); out.String() != want {
		t.Errorf("diagnostics = %q, want %q", out.String(), want)
	}

	if _, err := p.Parse(); !errors.Is(err, ErrCountMismatch) {
		t.Errorf("Parse() error = %v, want %v", err, ErrCountMismatch)
	}
}

func TestParser_Write(t *testing.T) {
	p, out := newTestParser()

	p.Write("hello")
	p.Write("")

	if want := "hello\n\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
