// Released under an MIT license. See LICENSE.

// Package commands provides the linsl primitives.
package commands

import (
	"github.com/michaelmacinnis/linsl/internal/common/interface/cell"
)

// Functions returns the primitives, by name. Each call returns a new map.
func Functions() map[string]func([]cell.I) (cell.I, error) {
	return map[string]func([]cell.I) (cell.I, error){
		"*":      mul,
		"+":      add,
		"=":      eq,
		">":      gt,
		"append": appendLists,
		"car":    car,
		"cdr":    cdr,
		"empty?": isEmpty,
		"eqt?":   eqt,
		"inv":    inv,
		"list":   makeList,
		"neg":    neg,
	}
}
