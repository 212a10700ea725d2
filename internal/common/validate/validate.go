// Released under an MIT license. See LICENSE.

// Package validate checks the number and type of arguments passed to
// linsl primitives and special forms.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/linsl/internal/common/failure"
	"github.com/michaelmacinnis/linsl/internal/common/interface/cell"
	"github.com/michaelmacinnis/linsl/internal/common/type/list"
	"github.com/michaelmacinnis/linsl/internal/common/type/num"
)

// Variadic returns the first max (at least min) cells in actual and the rest.
func Variadic(actual []cell.I, min, max int) ([]cell.I, []cell.I, error) {
	if len(actual) < min {
		s := Count(min, "argument", "s")

		return nil, nil, failure.Syntaxf(nil, "expected %s, passed %d", s, len(actual))
	}

	if len(actual) < max {
		max = len(actual)
	}

	return actual[:max], actual[max:], nil
}

// Fixed returns actual if it holds between min and max cells.
func Fixed(actual []cell.I, min, max int) ([]cell.I, error) {
	expected, rest, err := Variadic(actual, min, max)
	if err != nil {
		return nil, err
	}

	if len(rest) != 0 {
		s := Count(max, "argument", "s")
		if min != max {
			s = "at most " + s
		}

		return nil, failure.Syntaxf(nil, "expected %s, passed %d", s, len(actual))
	}

	return expected, nil
}

// Count returns n followed by label, pluralized with p unless n is 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

// List returns c as a list or fails, naming c as argument i.
func List(c cell.I, i int) (*list.T, error) {
	l := list.To(c)
	if l == nil {
		return nil, failure.Syntaxf(nil, "expected list for argument %d, found '%s'", i, c)
	}

	return l, nil
}

// Number returns the value of c or fails, naming c as argument i.
func Number(c cell.I, i int) (float64, error) {
	n := num.To(c)
	if n == nil {
		return 0, failure.Syntaxf(nil, "expected number for argument %d, found '%s'", i, c)
	}

	return n.Float(), nil
}

// Numbers returns the values of every cell in cs or fails at the first non-number.
func Numbers(cs []cell.I) ([]float64, error) {
	vs := make([]float64, len(cs))

	for i, c := range cs {
		v, err := Number(c, i+1)
		if err != nil {
			return nil, err
		}

		vs[i] = v
	}

	return vs, nil
}
