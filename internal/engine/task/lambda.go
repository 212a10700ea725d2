// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/linsl/internal/common/interface/cell"
)

// Lambda is linsl's arguments-evaluated, closure type.
type Lambda Closure

// The lambda type is a cell.

// Equal returns true if the cell c is the same lambda as a.
func (a *Lambda) Equal(c cell.I) bool {
	p, ok := c.(*Lambda)

	return ok && p == a
}

// Name returns the name of the lambda type.
func (*Lambda) Name() string {
	return "lambda"
}

// String returns the text representation of the lambda a.
func (a *Lambda) String() string {
	return a.Closure().render("lambda")
}

// Methods specific to lambda.

// Closure returns the lambda a's underlying closure.
func (a *Lambda) Closure() *Closure {
	return (*Closure)(a)
}
