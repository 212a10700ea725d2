// Released under an MIT license. See LICENSE.

// Package sym provides linsl's symbol cell type.
package sym

import (
	"github.com/michaelmacinnis/linsl/internal/common/interface/cell"
	"github.com/michaelmacinnis/linsl/internal/common/struct/loc"
	"github.com/michaelmacinnis/linsl/internal/common/struct/token"
)

const name = "symbol"

// T (sym) is a name. Symbols produced by the parser remember where they
// were read so that an unbound symbol can be reported at its location.
type T struct {
	source *loc.T
	text   string
}

type sym = T

// New creates a sym cell.
func New(v string) cell.I {
	return &sym{text: v}
}

// Token creates a sym cell from the token t.
func Token(t *token.T) cell.I {
	return &sym{source: t.Source(), text: t.Value()}
}

// Equal returns true if c is a sym and wraps the same string.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s.text == To(c).text
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// Source returns where the sym s was read, or nil.
func (s *sym) Source() *loc.T {
	return s.source
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return s.text
}

// Is returns true if c is a sym.
func Is(c cell.I) bool {
	_, ok := c.(*sym)

	return ok
}

// To returns a sym if c is a sym; Otherwise it returns nil.
func To(c cell.I) *sym {
	if t, ok := c.(*sym); ok {
		return t
	}

	return nil
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)
}
