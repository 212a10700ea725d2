// Released under an MIT license. See LICENSE.

// Package task provides the linsl evaluator.
//
// Evaluation is a recursive walk of the expression tree. Lists whose head
// is one of the special form names define, if, lambda, macro, or quote are
// handled directly. These names are checked before any lookup and cannot
// be shadowed. The head of any other list must evaluate to a lambda, macro,
// or primitive.
//
// Lambdas and macros keep no scope. Each is applied in a new child of the
// scope it was called from, so free names resolve where the call happens.
package task

import (
	"log"

	"github.com/michaelmacinnis/linsl/internal/common/failure"
	"github.com/michaelmacinnis/linsl/internal/common/interface/cell"
	"github.com/michaelmacinnis/linsl/internal/common/type/boolean"
	"github.com/michaelmacinnis/linsl/internal/common/type/env"
	"github.com/michaelmacinnis/linsl/internal/common/type/list"
	"github.com/michaelmacinnis/linsl/internal/common/type/sym"
	"github.com/michaelmacinnis/linsl/internal/common/validate"
)

// Evaluate reduces c to a value in the scope e.
func Evaluate(c cell.I, e *env.T) (cell.I, error) {
	if s := sym.To(c); s != nil {
		v, ok := e.Lookup(s.String())
		if !ok {
			return nil, failure.Syntaxf(s.Source(), "unbound symbol '%s'", s)
		}

		return v, nil
	}

	l := list.To(c)
	if l == nil {
		return c, nil
	}

	v, err := combination(l, e)
	if err != nil {
		return nil, failure.At(err, l.Source())
	}

	return v, nil
}

// Reserved returns true if s names a special form.
func Reserved(s string) bool {
	switch s {
	case "define", "if", "lambda", "macro", "quote":
		return true
	}

	return false
}

func combination(l *list.T, e *env.T) (cell.I, error) {
	if l.Empty() {
		return nil, failure.Syntaxf(nil, "expected non-empty list")
	}

	args := l.Elements()[1:]

	if s := sym.To(l.Head()); s != nil && Reserved(s.String()) {
		return special(s.String(), args, e)
	}

	f, err := Evaluate(l.Head(), e)
	if err != nil {
		return nil, err
	}

	switch f := f.(type) {
	case *Lambda:
		values, err := each(args, e)
		if err != nil {
			return nil, err
		}

		return f.Closure().apply(values, e)

	case *Macro:
		x, err := f.Closure().apply(args, e)
		if err != nil {
			return nil, err
		}

		log.Printf("expanded %s to %s", l, x)

		return Evaluate(x, e)

	case *Primitive:
		values, err := each(args, e)
		if err != nil {
			return nil, err
		}

		return f.Call(values)
	}

	return nil, failure.Syntaxf(nil, "'%s' is not a lambda, macro or primitive", f)
}

// each evaluates every cell in cs, in order, in the scope e.
func each(cs []cell.I, e *env.T) ([]cell.I, error) {
	values := make([]cell.I, len(cs))

	for i, c := range cs {
		v, err := Evaluate(c, e)
		if err != nil {
			return nil, err
		}

		values[i] = v
	}

	return values, nil
}

func special(name string, args []cell.I, e *env.T) (cell.I, error) {
	switch name {
	case "define":
		return define(args, e)
	case "if":
		return choose(args, e)
	case "lambda":
		v, err := validate.Fixed(args, 2, 2)
		if err != nil {
			return nil, err
		}

		return &Lambda{Body: v[1], Params: v[0]}, nil
	case "macro":
		v, err := validate.Fixed(args, 2, 2)
		if err != nil {
			return nil, err
		}

		return &Macro{Body: v[1], Params: v[0]}, nil
	case "quote":
		v, err := validate.Fixed(args, 1, 1)
		if err != nil {
			return nil, err
		}

		return v[0], nil
	}

	return nil, failure.Internalf("no special form named '%s'", name)
}

// Special forms.

func choose(args []cell.I, e *env.T) (cell.I, error) {
	v, err := validate.Fixed(args, 3, 3)
	if err != nil {
		return nil, err
	}

	c, err := Evaluate(v[0], e)
	if err != nil {
		return nil, err
	}

	b := boolean.To(c)
	if b == nil {
		return nil, failure.Syntaxf(nil, "expected boolean for condition, found '%s'", c)
	}

	if b.Bool() {
		return Evaluate(v[1], e)
	}

	return Evaluate(v[2], e)
}

func define(args []cell.I, e *env.T) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	s := sym.To(v[0])
	if s == nil {
		return nil, failure.Syntaxf(nil, "expected symbol for name, found '%s'", v[0])
	}

	c, err := Evaluate(v[1], e)
	if err != nil {
		return nil, err
	}

	e.Define(s.String(), c)

	return s, nil
}
