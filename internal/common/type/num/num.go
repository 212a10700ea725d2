// Released under an MIT license. See LICENSE.

// Package num provides linsl's number type.
package num

import (
	"math"
	"strconv"

	"github.com/michaelmacinnis/linsl/internal/common/interface/cell"
)

const name = "number"

// T (num) wraps Go's float64 type.
type T float64

type num = T

// New creates a new num cell from the float64 v.
func New(v float64) cell.I {
	n := num(v)

	return &n
}

// Parse creates a new num cell from the literal s. Literals that do not
// describe a finite number are rejected so that names like inf and nan
// remain available as symbols.
func Parse(s string) (cell.I, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, false
	}

	return New(v), true
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Float() == To(c).Float()
}

// Float returns the value of the num n as a float64.
func (n *num) Float() float64 {
	return float64(*n)
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the text of the num n.
func (n *num) String() string {
	return strconv.FormatFloat(n.Float(), 'f', -1, 64)
}

// Is returns true if c is a num.
func Is(c cell.I) bool {
	_, ok := c.(*num)

	return ok
}

// To returns a num if c is a num; Otherwise it returns nil.
func To(c cell.I) *num {
	if t, ok := c.(*num); ok {
		return t
	}

	return nil
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)
}
