// Released under an MIT license. See LICENSE.

// Package reader pairs the linsl lexer and parser.
package reader

import (
	"github.com/michaelmacinnis/linsl/internal/common/interface/cell"
	"github.com/michaelmacinnis/linsl/internal/reader/lexer"
	"github.com/michaelmacinnis/linsl/internal/reader/parser"
	"github.com/michaelmacinnis/linsl/internal/reader/source"
)

// T (reader) encapsulates the linsl lexer and parser.
type T struct {
	p *parser.T
	s *lexer.T
}

type reader = T

// New creates a new reader with no sources.
func New() *T {
	s := lexer.New()

	return &T{p: parser.New(s), s: s}
}

// Append adds the source s to the reader's queue of sources.
func (r *reader) Append(s source.I) {
	r.s.Append(s)
}

// Discard drops what remains of the current unit of input.
func (r *reader) Discard() {
	r.s.Discard()
}

// Read returns the next expression. When there is no more input
// it returns io.EOF.
func (r *reader) Read() (cell.I, error) {
	return r.p.Parse()
}
