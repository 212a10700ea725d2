// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/linsl/internal/common/interface/cell"
	"github.com/michaelmacinnis/linsl/internal/common/type/boolean"
	"github.com/michaelmacinnis/linsl/internal/common/type/list"
	"github.com/michaelmacinnis/linsl/internal/common/validate"
)

func eqt(args []cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(v[0].Name() == v[1].Name()), nil
}

func isEmpty(args []cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	l := list.To(v[0])

	return boolean.Bool(l != nil && l.Empty()), nil
}
