// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/linsl/internal/common/interface/cell"
)

// Macro is linsl's arguments-not-evaluated, closure type.
// Applying a macro produces a form that is then evaluated in
// the caller's scope.
type Macro Closure

// The macro type is a cell.

// Equal returns true if the cell c is the same macro as a.
func (a *Macro) Equal(c cell.I) bool {
	p, ok := c.(*Macro)

	return ok && p == a
}

// Name returns the name of the macro type.
func (*Macro) Name() string {
	return "macro"
}

// String returns the text representation of the macro a.
func (a *Macro) String() string {
	return a.Closure().render("macro")
}

// Methods specific to macro.

// Closure returns the macro a's underlying closure.
func (a *Macro) Closure() *Closure {
	return (*Closure)(a)
}
