// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/linsl/internal/common/failure"
	"github.com/michaelmacinnis/linsl/internal/common/interface/cell"
	"github.com/michaelmacinnis/linsl/internal/common/type/boolean"
	"github.com/michaelmacinnis/linsl/internal/common/type/num"
	"github.com/michaelmacinnis/linsl/internal/common/type/sym"
	"github.com/michaelmacinnis/linsl/internal/common/validate"
)

func eq(args []cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	for i, c := range v {
		if !boolean.Is(c) && !num.Is(c) && !sym.Is(c) {
			return nil, failure.Syntaxf(
				nil, "expected boolean, number or symbol for argument %d, found '%s'", i+1, c,
			)
		}
	}

	if v[0].Name() != v[1].Name() {
		return nil, failure.Syntaxf(
			nil, "cannot compare %s '%s' with %s '%s'", v[0].Name(), v[0], v[1].Name(), v[1],
		)
	}

	return boolean.Bool(v[0].Equal(v[1])), nil
}

func gt(args []cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	vs, err := validate.Numbers(v)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(vs[0] > vs[1]), nil
}
