package console

import (
	"log/slog"
	"slices"
	"strings"
)

// TargetSeparator delimits the controller and action of a target token.
const TargetSeparator = ":"

// Options is the result of one parsing pass over the raw arguments.
type Options struct {
	// Values maps each short option name to its value.
	// A repeated option keeps the last value given.
	Values map[string]string `json:"options" yaml:"options"`
	// Target is the raw, unsplit target token. It is valid only when
	// HasTarget is true.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	// Flags lists the long flags in the order encountered.
	Flags []string `json:"flags" yaml:"flags"`
	// HasTarget reports whether a target token was present.
	HasTarget bool `json:"-" yaml:"-"`
}

// Lookup returns the value of short option name and whether it was given.
func (o Options) Lookup(name string) (string, bool) {
	v, ok := o.Values[name]

	return v, ok
}

// HasFlag reports whether long flag name was given.
func (o Options) HasFlag(name string) bool {
	return slices.Contains(o.Flags, name)
}

// Split returns the components of the target delimited by
// [TargetSeparator], or nil if no target was given.
func (o Options) Split() []string {
	if !o.HasTarget {
		return nil
	}

	return strings.Split(o.Target, TargetSeparator)
}

// Names returns the short option names in sorted order.
func (o Options) Names() []string {
	names := make([]string, 0, len(o.Values))
	for name := range o.Values {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// LogValue implements slog.LogValuer.
func (o Options) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 3)

	if o.HasTarget {
		attrs = append(attrs, slog.String("target", o.Target))
	}

	opts := make([]slog.Attr, 0, len(o.Values))
	for _, name := range o.Names() {
		opts = append(opts, slog.String(name, o.Values[name]))
	}

	attrs = append(attrs,
		slog.Attr{Key: "options", Value: slog.GroupValue(opts...)},
		slog.Any("flags", o.Flags),
	)

	return slog.GroupValue(attrs...)
}

// assemble validates the compacted capture streams and builds Options.
func assemble(c captures) (Options, error) {
	if len(c.opts) != len(c.values) {
		return Options{}, ErrCountMismatch.With(
			slog.Int("options", len(c.opts)),
			slog.Int("values", len(c.values)),
		)
	}

	o := Options{
		Values: make(map[string]string, len(c.opts)),
		Flags:  make([]string, 0, len(c.longs)),
	}

	for i, name := range c.opts {
		value := c.values[i]
		if name == "" || value == "" {
			return Options{}, ErrPairMismatch.With(
				slog.Int("index", i),
				slog.String("option", name),
				slog.String("value", value),
			)
		}

		o.Values[name] = value
	}

	o.Flags = append(o.Flags, c.longs...)

	if len(c.targets) > 0 {
		o.Target, o.HasTarget = c.targets[0], true
	}

	return o, nil
}
