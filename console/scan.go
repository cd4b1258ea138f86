package console

import (
	"regexp"
	"strings"
)

// grammar matches, in priority order at each scan position, a target token,
// a short option with its value, or a long flag.
var grammar = regexp.MustCompile(
	`(?P<target>[\w:]+)` +
		`|-(?P<opt>[a-zA-Z]+)[\s=](?P<value>\w+)` +
		`|--(?P<long>\w+)`,
)

// Capture group indices of grammar.
var (
	groupTarget = grammar.SubexpIndex("target")
	groupOpt    = grammar.SubexpIndex("opt")
	groupValue  = grammar.SubexpIndex("value")
	groupLong   = grammar.SubexpIndex("long")
)

// captures holds the parallel capture streams produced by a single scan.
// Alternatives that did not participate in a match contribute "".
type captures struct {
	targets []string
	opts    []string
	values  []string
	longs   []string
}

// scan joins the argument tokens with single spaces and collects every
// match of grammar from left to right.
func scan(tokens []string) captures {
	line := strings.Join(tokens, " ")
	matches := grammar.FindAllStringSubmatch(line, -1)

	c := captures{
		targets: make([]string, 0, len(matches)),
		opts:    make([]string, 0, len(matches)),
		values:  make([]string, 0, len(matches)),
		longs:   make([]string, 0, len(matches)),
	}

	for _, m := range matches {
		c.targets = append(c.targets, m[groupTarget])
		c.opts = append(c.opts, m[groupOpt])
		c.values = append(c.values, m[groupValue])
		c.longs = append(c.longs, m[groupLong])
	}

	return c
}

// compacted returns the capture streams with empty captures removed.
func (c captures) compacted() captures {
	return captures{
		targets: compact(c.targets),
		opts:    compact(c.opts),
		values:  compact(c.values),
		longs:   compact(c.longs),
	}
}

// compact returns the non-zero elements of s in their original order.
// The result never aliases s.
func compact[T comparable](s []T) []T {
	var zero T

	out := make([]T, 0, len(s))

	for _, v := range s {
		if v != zero {
			out = append(out, v)
		}
	}

	return out
}
