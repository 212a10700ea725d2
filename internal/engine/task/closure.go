// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/linsl/internal/common/interface/cell"
	"github.com/michaelmacinnis/linsl/internal/common/type/env"
)

// Closure underlies the lambda and macro types.
// No scope is kept. A closure is applied in a child of the caller's scope.
type Closure struct {
	Body   cell.I // Body of the routine.
	Params cell.I // Param labels, as written.
}

// apply binds values to the closure's params in a new child of the
// caller's scope and then evaluates its body there.
func (c *Closure) apply(values []cell.I, caller *env.T) (cell.I, error) {
	e := env.New(caller)

	err := bind(c.Params, values, e)
	if err != nil {
		return nil, err
	}

	return Evaluate(c.Body, e)
}

func (c *Closure) render(label string) string {
	return "(" + label + " " + c.Params.String() + ", " + c.Body.String() + ")"
}
