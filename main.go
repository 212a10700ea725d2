/*
Linsl is a small interpreter for a Lisp/Scheme-like language.

The core language has booleans, numbers, symbols, lists, lambdas and
macros, five special forms, and a handful of primitives:

	(define square (lambda (x) (* x x)))
	(square 12)
	(define unless (macro (test body) `(if ,test '() ,body)))
	(unless (> 1 2) 'ok)
	`(1 ,(+ 1 1) ,@(list 3 4))

A prelude written in linsl defines the rest. Expressions are read from
the files named on the command line, from the -c option, or from stdin.

Linsl is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/michaelmacinnis/linsl/internal/engine"
	"github.com/michaelmacinnis/linsl/internal/reader"
	"github.com/michaelmacinnis/linsl/internal/reader/source"
	"github.com/michaelmacinnis/linsl/internal/system/options"
	"github.com/michaelmacinnis/linsl/internal/ui"
)

const version = "0.1.0"

func main() {
	options.Parse()

	os.Exit(start(os.Stdin, os.Stdout, os.Stderr))
}

// start runs linsl as directed by the parsed options and returns the exit status.
func start(stdin io.Reader, stdout, stderr io.Writer) int {
	if options.Version() {
		fmt.Fprintln(stdout, "linsl", version)

		return 0
	}

	log.SetFlags(0)
	log.SetPrefix("linsl: ")

	if options.Debug() {
		log.SetOutput(stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	e, err := engine.New(!options.Prelude())
	if err != nil {
		fmt.Fprintln(stderr, err.Error())

		return 1
	}

	r := reader.New()

	if c := options.Command(); c != "" {
		r.Append(source.String("command", c))
	}

	for _, name := range options.Files() {
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())

			return 1
		}
		defer f.Close()

		r.Append(source.New(name, f))
	}

	if options.Interactive() {
		e.Run(r, stdout, stderr)

		err = ui.Run(e, r)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())

			return 1
		}

		return 0
	}

	if options.Stdin() {
		r.Append(source.New("stdin", stdin))
	}

	if e.Run(r, stdout, stderr) > 0 {
		return 1
	}

	return 0
}
