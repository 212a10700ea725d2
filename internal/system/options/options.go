// Released under an MIT license. See LICENSE.

// Package options parses the linsl command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	debug       bool
	files       []string
	interactive bool
	prelude     bool
	stdin       bool
	version     bool
	usage       = `linsl

Usage:
  linsl [-dn] [-s] FILE...
  linsl [-dn] -c EXPR
  linsl [-din] [-s]
  linsl -h
  linsl -v

Arguments:
  FILE  Path to a linsl source file. Files are read in order.

Options:
  -c, --command=EXPR  Evaluate the specified expressions.
  -d, --debug         Log what the interpreter is doing to stderr.
  -i, --interactive   Invert interactive mode.
  -n, --no-prelude    Start with only the primitives defined.
  -s, --stdin         Read expressions from stdin after any files.
  -h, --help          Display this help.
  -v, --version       Print linsl version.

If linsl's stdin is a TTY, and linsl was invoked with no files or was
explicitly directed to read from stdin, interactive mode is enabled.
Otherwise, it is disabled.
`
)

// Command returns the expressions passed with -c, if any.
func Command() string {
	return command
}

// Debug returns true if logging was requested.
func Debug() bool {
	return debug
}

// Files returns the source files named on the command line.
func Files() []string {
	return files
}

// Interactive returns true if stdin should be read with line editing.
func Interactive() bool {
	return interactive
}

// Parse parses os.Args. Parse must be called before any other function.
func Parse() {
	ParseArgs(os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
}

// ParseArgs parses argv. The value of terminal reports whether stdin is a TTY.
func ParseArgs(argv []string, terminal bool) {
	opts, err := docopt.ParseArgs(usage, argv, "")
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	debug, _ = opts.Bool("--debug")
	version, _ = opts.Bool("--version")

	files, _ = opts["FILE"].([]string)

	noPrelude, _ := opts.Bool("--no-prelude")
	prelude = !noPrelude

	stdin, _ = opts.Bool("--stdin")
	if command == "" && len(files) == 0 {
		stdin = true
	}

	interactive = stdin && terminal

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive
}

// Prelude returns true unless the boot script should be skipped.
func Prelude() bool {
	return prelude
}

// Stdin returns true if expressions should be read from stdin.
func Stdin() bool {
	return stdin
}

// Version returns true if the version was requested.
func Version() bool {
	return version
}
