package pkg

// Sentinel errors of the command-line front end.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrInvalidFormat is returned when an unknown output format is requested.
//
// This error should be wrapped with the invalid format name along with the
// list of valid formats.
var ErrInvalidFormat = MakeErrorf("invalid format")

// ErrJSONMarshal is returned when JSON marshaling fails.
//
// This error should be wrapped with the underlying marshaling error
// to preserve the error chain.
var ErrJSONMarshal = MakeErrorf("JSON marshal error")

// ErrYAMLMarshal is returned when YAML marshaling fails.
//
// This error should be wrapped with the underlying marshaling error
// to preserve the error chain.
var ErrYAMLMarshal = MakeErrorf("YAML marshal error")

// ErrExprCompile is returned when an expression cannot be compiled against
// the environment of a parse result.
var ErrExprCompile = MakeErrorf("expression compilation failed")

// ErrExprEvaluate is returned when a compiled expression fails at run time.
var ErrExprEvaluate = MakeErrorf("expression evaluation failed")

// ErrParseArguments is returned when strict parsing is requested and the
// raw arguments are malformed.
var ErrParseArguments = MakeErrorf("malformed arguments")

// ErrReadConfig is returned when a configuration file cannot be decoded.
var ErrReadConfig = MakeErrorf("read configuration file")

// ErrWriteConfig is returned when the configuration file cannot be written.
var ErrWriteConfig = MakeErrorf("write configuration file")

// ErrFileExists is returned when a file would be overwritten without
// permission.
var ErrFileExists = MakeErrorf("file exists (use --force to overwrite)")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", from innermost to outermost.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap appends one or more errors to a copy of the receiver and returns the
// result. The receiver is never modified, so sentinels may be wrapped freely.
func (e Error) Wrap(err ...error) Error {
	return slices.Concat(e, compactErrors(err))
}

// Wrapf appends a formatted error to a copy of the receiver and returns the
// result.
func (e Error) Wrapf(format string, args ...any) Error {
	return slices.Concat(e, Error{fmt.Errorf(format, args...)})
}

// Is reports whether target is an Error whose chain is a prefix of the
// receiver's chain, which holds for any error derived from target with
// [Error.Wrap] or [Error.Wrapf].
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok || len(t) == 0 || len(t) > len(e) {
		return false
	}

	for i := range t {
		if e[i] != t[i] {
			return false
		}
	}

	return true
}

func compactErrors(errs []error) []error {
	return slices.DeleteFunc(slices.Clone(errs), func(err error) bool {
		return err == nil
	})
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
