// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed linsl code.
package engine

import (
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/michaelmacinnis/linsl/internal/common/failure"
	"github.com/michaelmacinnis/linsl/internal/common/interface/cell"
	"github.com/michaelmacinnis/linsl/internal/common/type/env"
	"github.com/michaelmacinnis/linsl/internal/engine/boot"
	"github.com/michaelmacinnis/linsl/internal/engine/commands"
	"github.com/michaelmacinnis/linsl/internal/engine/task"
	"github.com/michaelmacinnis/linsl/internal/reader"
	"github.com/michaelmacinnis/linsl/internal/reader/source"
)

// Reader is the interface for things that produce parsed expressions.
type Reader interface {
	Discard()
	Read() (cell.I, error)
}

// T (engine) is a facade in front of the machinery for evaluating linsl code.
type T struct {
	root *env.T
}

// New creates a new T. Unless bare is true, the boot script is loaded.
func New(bare bool) (*T, error) {
	e := &T{root: env.New(nil)}

	for name, fn := range commands.Functions() {
		e.root.Define(name, task.NewPrimitive(name, fn))
	}

	if bare {
		return e, nil
	}

	r := reader.New()
	r.Append(source.String("boot", boot.Script()))

	for {
		c, err := r.Read()
		if err == io.EOF {
			break
		}

		if err == nil {
			_, err = e.Evaluate(c)
		}

		if err != nil {
			return nil, failure.Wrap(err, "loading boot script")
		}
	}

	log.Printf("loaded boot script, %d names defined", e.root.Size())

	return e, nil
}

// Evaluate evaluates the expression c in the engine's root scope.
func (e *T) Evaluate(c cell.I) (cell.I, error) {
	return task.Evaluate(c, e.root)
}

// Names returns every name defined in the engine's root scope along
// with the names of the special forms.
func (e *T) Names() []string {
	names := e.root.Names()

	for _, s := range []string{"define", "if", "lambda", "macro", "quote"} {
		if _, ok := e.root.Lookup(s); !ok {
			names = append(names, s)
		}
	}

	sort.Strings(names)

	return names
}

// Run reads, evaluates and prints expressions until r is exhausted.
// Results are written to out and failures are written to errs.
// The first failure in an expression abandons the rest of the
// current unit of input. Run returns the number of failures.
func (e *T) Run(r Reader, out, errs io.Writer) int {
	failed := 0

	for {
		c, err := r.Read()
		if err == io.EOF {
			return failed
		}

		if err == nil {
			c, err = e.Evaluate(c)
		}

		if err != nil {
			failed++

			fmt.Fprintln(errs, err.Error())
			r.Discard()

			continue
		}

		fmt.Fprintln(out, c.String())
	}
}
