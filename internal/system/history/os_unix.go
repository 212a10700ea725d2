// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris
// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris

package history

import (
	"os"
	"path"
)

//nolint:gochecknoglobals
var name = ".linsl_history"

func file(op func(string) (*os.File, error)) (*os.File, error) {
	return op(path.Join(os.Getenv("HOME"), name))
}
