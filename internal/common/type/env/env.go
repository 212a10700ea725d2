// Released under an MIT license. See LICENSE.

// Package env provides linsl's scope type.
package env

import (
	"sort"

	"github.com/michaelmacinnis/linsl/internal/common/interface/cell"
	"github.com/michaelmacinnis/linsl/internal/common/struct/hash"
)

// T (env) maps names to values and chains to an enclosing scope.
type T struct {
	previous *T
	names    *hash.T
}

type env = T

// New creates a new env enclosed by previous. Only the root has a nil previous.
func New(previous *T) *env {
	return &env{
		previous: previous,
		names:    hash.New(),
	}
}

// Define associates the name k with the cell v in the env e.
// Enclosing scopes are never modified.
func (e *env) Define(k string, v cell.I) {
	e.names.Set(k, v)
}

// Lookup retrieves the value associated with the name k in the env e
// or the nearest enclosing scope that defines it.
func (e *env) Lookup(k string) (cell.I, bool) {
	for s := e; s != nil; s = s.previous {
		if v, ok := s.names.Get(k); ok {
			return v, true
		}
	}

	return nil, false
}

// Names returns every name visible from the env e in sorted order.
func (e *env) Names() []string {
	seen := map[string]bool{}
	names := []string{}

	for s := e; s != nil; s = s.previous {
		for _, k := range s.names.Keys() {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}

	sort.Strings(names)

	return names
}

// Size returns the number of names defined directly in the env e.
func (e *env) Size() int {
	return e.names.Size()
}
