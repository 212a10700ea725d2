// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/linsl/internal/common/failure"
	"github.com/michaelmacinnis/linsl/internal/common/interface/cell"
	"github.com/michaelmacinnis/linsl/internal/common/type/env"
	"github.com/michaelmacinnis/linsl/internal/common/type/list"
	"github.com/michaelmacinnis/linsl/internal/common/type/sym"
	"github.com/michaelmacinnis/linsl/internal/common/validate"
)

// bind defines each name in params in the scope e.
//
// If there are more values than names, the last name is bound to
// a list holding the remaining values.
func bind(params cell.I, values []cell.I, e *env.T) error {
	l := list.To(params)
	if l == nil {
		return failure.Syntaxf(nil, "expected list of parameters, found '%s'", params)
	}

	names := make([]string, l.Length())

	for i, p := range l.Elements() {
		s := sym.To(p)
		if s == nil {
			return failure.Syntaxf(nil, "expected symbol for parameter %d, found '%s'", i+1, p)
		}

		names[i] = s.String()
	}

	n := len(names)

	if n > len(values) || (n == 0 && len(values) > 0) {
		s := validate.Count(n, "argument", "s")

		return failure.Syntaxf(nil, "expected %s, passed %d", s, len(values))
	}

	if n == len(values) {
		for i, name := range names {
			e.Define(name, values[i])
		}

		return nil
	}

	last := n - 1

	for i, name := range names[:last] {
		e.Define(name, values[i])
	}

	e.Define(names[last], list.New(values[last:]...))

	return nil
}
