// Package console parses the raw arguments of a command-line invocation into
// a dispatch target, short options, and long flags.
//
// # Grammar
//
// The arguments following the program name are joined with spaces and
// scanned from left to right. At each position the first matching form
// below is taken:
//
//	controller:action   target (word characters and colons)
//	-x value, -x=value  short option with a value (letters, then a word)
//	--name              long flag without a value
//
// Only the first target-shaped token is used. A repeated short option keeps
// its last value. A value containing spaces cannot be expressed, since each
// run of non-space characters is scanned on its own.
//
// # Queries
//
//	p := console.New(os.Args)
//	switch p.Controller() {
//	case "user":
//		name, ok := p.Opt("n")
//		...
//	}
//
// Query methods never fail. A missing target, an unknown option, or
// malformed arguments produce one diagnostic line on the Parser's output
// (see [WithOutput]) and the zero result. Use [Parser.Parse] to inspect
// the parse error directly, which matches the sentinels of this package
// with [errors.Is].
package console
