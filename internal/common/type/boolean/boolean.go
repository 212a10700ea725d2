// Released under an MIT license. See LICENSE.

// Package boolean provides linsl's boolean value type.
package boolean

import (
	"github.com/michaelmacinnis/linsl/internal/common/interface/cell"
)

const name = "boolean"

// T (boolean) wraps Go's bool type.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	False = f()
	True  = t()
)

// Bool returns the boolean cell for the bool b.
func Bool(b bool) cell.I {
	if b {
		return True
	}

	return False
}

// New returns the boolean cell for the literal s, or nil if s is not #t or #f.
func New(s string) cell.I {
	switch s {
	case "#t":
		return True
	case "#f":
		return False
	}

	return nil
}

// Bool returns the boolean value of the boolean b.
func (b *boolean) Bool() bool {
	return bool(*b)
}

// Equal returns true if c is a boolean with a matching value.
func (b *boolean) Equal(c cell.I) bool {
	return Is(c) && b.Bool() == To(c).Bool()
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b *boolean) String() string {
	if bool(*b) {
		return "#t"
	}

	return "#f"
}

// Is returns true if c is a boolean.
func Is(c cell.I) bool {
	_, ok := c.(*boolean)

	return ok
}

// To returns a boolean if c is a boolean; Otherwise it returns nil.
func To(c cell.I) *boolean {
	if t, ok := c.(*boolean); ok {
		return t
	}

	return nil
}

func f() *boolean {
	v := boolean(false)

	return &v
}

func t() *boolean {
	v := boolean(true)

	return &v
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type is a cell.
	_ = cell.I(&t)
}
