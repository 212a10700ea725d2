// Released under an MIT license. See LICENSE.

// Package failure provides the errors reported by the linsl reader and engine.
//
// There are three kinds of failure. Internal failures are faults in the
// interpreter or its environment, such as a source that can no longer be
// read. Syntax failures are malformed or ill-typed forms in user code.
// Unbalanced failures are raised by the lexer when a unit of input does not
// close every parenthesis that it opens.
package failure

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/michaelmacinnis/linsl/internal/common/struct/loc"
)

// Internal is an error that is not caused by user code.
type Internal struct {
	Msg string
	Err error
}

// Internalf creates a new Internal failure.
func Internalf(format string, args ...interface{}) *Internal {
	return &Internal{Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates a new Internal failure caused by err.
func Wrap(err error, msg string) *Internal {
	return &Internal{Msg: msg, Err: err}
}

func (f *Internal) Error() string {
	if f.Err == nil {
		return "Internal error: " + f.Msg
	}

	return "Internal error: " + f.Msg + ": " + f.Err.Error()
}

// Unwrap returns the cause of the failure, if any.
func (f *Internal) Unwrap() error {
	return f.Err
}

// Syntax is an error in a user-level form.
type Syntax struct {
	Msg    string
	Source *loc.T
}

// Syntaxf creates a new Syntax failure at source. A nil source is
// filled in later by At.
func Syntaxf(source *loc.T, format string, args ...interface{}) *Syntax {
	return &Syntax{Msg: fmt.Sprintf(format, args...), Source: source}
}

func (f *Syntax) Error() string {
	if f.Source == nil {
		return "Syntax error: " + f.Msg
	}

	return "Syntax error at " + f.Source.String() + ": " + f.Msg
}

// Unbalanced reports a unit of input with mismatched parentheses.
type Unbalanced struct {
	Open   int
	Close  int
	Source *loc.T
}

func (f *Unbalanced) Error() string {
	return "Unbalanced parentheses (" +
		strconv.Itoa(f.Open) + ", " + strconv.Itoa(f.Close) + ")"
}

// At attaches source to err if err is a Syntax failure without a location.
// The innermost location wins; one that is already set is never replaced.
func At(err error, source *loc.T) error {
	var s *Syntax
	if source != nil && errors.As(err, &s) && s.Source == nil {
		s.Source = source
	}

	return err
}

// IsSyntax returns true if err is, or wraps, a Syntax failure.
func IsSyntax(err error) bool {
	var s *Syntax

	return errors.As(err, &s)
}

// IsInternal returns true if err is, or wraps, an Internal failure.
func IsInternal(err error) bool {
	var i *Internal

	return errors.As(err, &i)
}

// IsUnbalanced returns true if err is, or wraps, an Unbalanced failure.
func IsUnbalanced(err error) bool {
	var u *Unbalanced

	return errors.As(err, &u)
}
