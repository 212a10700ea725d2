// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/linsl/internal/common/interface/cell"
)

// Primitive is a built-in function. Its arguments are evaluated.
type Primitive struct {
	fn   func([]cell.I) (cell.I, error)
	name string
}

// NewPrimitive creates a primitive named name that calls fn.
func NewPrimitive(name string, fn func([]cell.I) (cell.I, error)) *Primitive {
	return &Primitive{fn: fn, name: name}
}

// The primitive type is a cell.

// Equal returns true if the cell c is the same primitive as p.
func (p *Primitive) Equal(c cell.I) bool {
	o, ok := c.(*Primitive)

	return ok && o == p
}

// Name returns the name of the primitive type.
func (*Primitive) Name() string {
	return "primitive"
}

// String returns a placeholder for the primitive p. It cannot be read back.
func (p *Primitive) String() string {
	return "#<primitive " + p.name + ">"
}

// Methods specific to primitive.

// Call invokes the primitive p with args.
func (p *Primitive) Call(args []cell.I) (cell.I, error) {
	return p.fn(args)
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	// The lambda type is a cell.
	_ = cell.I(&Lambda{})

	// The macro type is a cell.
	_ = cell.I(&Macro{})

	// The primitive type is a cell.
	_ = cell.I(&Primitive{})
}
