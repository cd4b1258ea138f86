package console

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// Predefined errors (sentinel values).
//
// The message of each sentinel is the diagnostic line written by the query
// methods of [Parser] when the condition occurs. [ErrUnknownOption] and
// [ErrIncompleteTarget] name the offending input: their diagnostic is the
// sentinel's template filled in by [Error.Messagef].
var (
	ErrCountMismatch       = NewError("Option and value count doesn't match.")
	ErrPairMismatch        = NewError("Option or value mismatch. Please check your arguments.")
	ErrAmbiguousLongOption = NewError("Long option was found in regular options set.")
	ErrNoTarget            = NewError("No target given.")
	ErrUnknownOption       = NewTemplate("No option with name %q found.")
	ErrIncompleteTarget    = NewTemplate("Incomplete target %q (expected controller" + TargetSeparator + "action).")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
//
// Errors derived from a sentinel with [Error.With] or [Error.Wrap] remain
// matchable against it with [errors.Is].
type Error struct {
	msg    string
	format string
	err    error
	attrs  []slog.Attr
	base   *Error
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// NewTemplate creates a new Error whose message is rendered from format by
// [Error.Messagef]. Until then, the message is format with every verb
// replaced by "…".
func NewTemplate(format string) *Error {
	return &Error{msg: verb.ReplaceAllString(format, "…"), format: format}
}

// verb matches the fmt verbs of a template.
var verb = regexp.MustCompile(`%[-+# 0]*\d*(?:\.\d+)?[a-zA-Z]`)

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || (e.base != nil && e.base == t.root())
}

// root returns the sentinel at the base of a derivation chain.
func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
		base:  e.root(),
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
		base:  e.root(),
	}
}

// Messagef returns a derived Error whose message is the receiver's template
// formatted with args. An Error without a template keeps its message.
func (e *Error) Messagef(args ...any) *Error {
	format := e.root().format
	if format == "" {
		return e.WithMessage(e.msg)
	}

	return e.WithMessage(fmt.Sprintf(format, args...))
}

// WithMessage returns a derived Error whose message is replaced by msg.
// The result still matches the receiver's sentinel with [errors.Is].
func (e *Error) WithMessage(msg string) *Error {
	return &Error{
		msg:   msg,
		err:   e.err,
		attrs: e.attrs,
		base:  e.root(),
	}
}
