// Released under an MIT license. See LICENSE.

// Package list provides linsl's list type. Unlike oh, where lists are
// composed of cons cells, a linsl list is an ordered sequence.
package list

import (
	"strings"

	"github.com/michaelmacinnis/linsl/internal/common/interface/cell"
	"github.com/michaelmacinnis/linsl/internal/common/struct/loc"
)

const name = "list"

// T (list) is an ordered sequence of cells.
type T struct {
	elements []cell.I
	source   *loc.T
}

type list = T

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	return &list{elements: elements}
}

// Located creates a new list that was read at source.
func Located(source *loc.T, elements ...cell.I) cell.I {
	return &list{elements: elements, source: source}
}

// Append creates a new list from the elements of each list in lists.
// None of the lists are modified.
func Append(lists ...*T) cell.I {
	n := 0
	for _, l := range lists {
		n += len(l.elements)
	}

	elements := make([]cell.I, 0, n)
	for _, l := range lists {
		elements = append(elements, l.elements...)
	}

	return New(elements...)
}

// Elements returns the elements of the list l. The slice must not be modified.
func (l *list) Elements() []cell.I {
	return l.elements
}

// Empty returns true if the list l has no elements.
func (l *list) Empty() bool {
	return len(l.elements) == 0
}

// Equal returns true if c is a list with elements that are equal to l's.
func (l *list) Equal(c cell.I) bool {
	o := To(c)
	if o == nil || len(o.elements) != len(l.elements) {
		return false
	}

	for i, e := range l.elements {
		if !e.Equal(o.elements[i]) {
			return false
		}
	}

	return true
}

// Head returns the first element of the list l, or nil if l is empty.
func (l *list) Head() cell.I {
	if l.Empty() {
		return nil
	}

	return l.elements[0]
}

// Length returns the number of elements in the list l.
func (l *list) Length() int {
	return len(l.elements)
}

// Name returns the name for a list type.
func (l *list) Name() string {
	return name
}

// Source returns where the list l was read, or nil.
func (l *list) Source() *loc.T {
	return l.source
}

// String returns the text representation of the list l.
func (l *list) String() string {
	s := make([]string, len(l.elements))
	for i, e := range l.elements {
		s[i] = e.String()
	}

	return "(" + strings.Join(s, " ") + ")"
}

// Tail returns a list of all but the first element of the list l.
// The tail of an empty list is an empty list.
func (l *list) Tail() cell.I {
	if l.Empty() {
		return New()
	}

	return New(l.elements[1:]...)
}

// Is returns true if c is a list.
func Is(c cell.I) bool {
	_, ok := c.(*list)

	return ok
}

// To returns a list if c is a list; Otherwise it returns nil.
func To(c cell.I) *list {
	if t, ok := c.(*list); ok {
		return t
	}

	return nil
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.I(&t)
}
