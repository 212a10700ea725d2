// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/linsl/internal/common/interface/cell"
	"github.com/michaelmacinnis/linsl/internal/common/type/list"
	"github.com/michaelmacinnis/linsl/internal/common/validate"
)

func appendLists(args []cell.I) (cell.I, error) {
	ls := make([]*list.T, len(args))

	for i, c := range args {
		l, err := validate.List(c, i+1)
		if err != nil {
			return nil, err
		}

		ls[i] = l
	}

	if len(ls) == 1 {
		return args[0], nil
	}

	return list.Append(ls...), nil
}

func car(args []cell.I) (cell.I, error) {
	l, err := only(args)
	if err != nil {
		return nil, err
	}

	if l.Empty() {
		return l, nil
	}

	return l.Head(), nil
}

func cdr(args []cell.I) (cell.I, error) {
	l, err := only(args)
	if err != nil {
		return nil, err
	}

	return l.Tail(), nil
}

func makeList(args []cell.I) (cell.I, error) {
	return list.New(args...), nil
}

func only(args []cell.I) (*list.T, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return validate.List(v[0], 1)
}
