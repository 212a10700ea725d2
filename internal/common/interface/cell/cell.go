// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all linsl expressions.
package cell

// I (cell) is the basic unit of code and data in linsl.
type I interface {
	Equal(c I) bool
	Name() string
	String() string
}
