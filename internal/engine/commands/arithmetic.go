// Released under an MIT license. See LICENSE.

package commands

import (
	"math"

	"github.com/michaelmacinnis/linsl/internal/common/failure"
	"github.com/michaelmacinnis/linsl/internal/common/interface/cell"
	"github.com/michaelmacinnis/linsl/internal/common/type/num"
	"github.com/michaelmacinnis/linsl/internal/common/validate"
)

func add(args []cell.I) (cell.I, error) {
	vs, err := validate.Numbers(args)
	if err != nil {
		return nil, err
	}

	sum := 0.0
	for _, v := range vs {
		sum += v
	}

	return finite(sum)
}

func inv(args []cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	divisor, err := validate.Number(v[0], 1)
	if err != nil {
		return nil, err
	}

	if divisor == 0 {
		return nil, failure.Syntaxf(nil, "division by zero")
	}

	return finite(1 / divisor)
}

func mul(args []cell.I) (cell.I, error) {
	vs, err := validate.Numbers(args)
	if err != nil {
		return nil, err
	}

	product := 1.0
	for _, v := range vs {
		product *= v
	}

	return finite(product)
}

func neg(args []cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 0, 1)
	if err != nil {
		return nil, err
	}

	n := 0.0

	if len(v) == 1 {
		n, err = validate.Number(v[0], 1)
		if err != nil {
			return nil, err
		}
	}

	return num.New(-n), nil
}

// finite wraps v as a num or fails if v has left the range of float64.
func finite(v float64) (cell.I, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, failure.Syntaxf(nil, "result is not a finite number")
	}

	return num.New(v), nil
}
