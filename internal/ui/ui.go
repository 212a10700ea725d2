// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the linsl language.
package ui

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/peterh/liner"

	"github.com/michaelmacinnis/linsl/internal/engine"
	"github.com/michaelmacinnis/linsl/internal/reader"
	"github.com/michaelmacinnis/linsl/internal/system/history"
)

const (
	continued = "...... "
	prompt    = "linsl> "
)

// Engine is the interface for things that evaluate what the user types.
type Engine interface {
	Names() []string
	Run(r engine.Reader, out, errs io.Writer) int
}

// Run reads expressions from the terminal and passes them to e until the
// user ends input. Interrupting a prompt abandons the current unit of input.
func Run(e Engine, r *reader.T) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(completer(e.Names))

	err := history.Load(cli.ReadHistory)
	if err != nil {
		log.Printf("cannot load history: %v", err)
	}

	for {
		t := &terminal{cli: cli}

		r.Append(t)
		e.Run(r, os.Stdout, os.Stderr)

		if !t.aborted {
			break
		}

		r.Discard()
	}

	return history.Save(cli.WriteHistory)
}

type terminal struct {
	aborted bool
	cli     *liner.State
}

func (t *terminal) Name() string {
	return "stdin"
}

func (t *terminal) ReadLine(open bool) (string, error) {
	p := prompt
	if open {
		p = continued
	}

	line, err := t.cli.Prompt(p)

	switch err {
	case nil:
		if strings.TrimSpace(line) != "" {
			t.cli.AppendHistory(line)
		}

		return line + "\n", nil
	case liner.ErrPromptAborted:
		t.aborted = true

		return "", io.EOF
	case io.EOF:
		fmt.Println()

		return "", io.EOF
	}

	return "", err
}

// completer returns a liner.WordCompleter that completes names.
func completer(names func() []string) liner.WordCompleter {
	return func(line string, pos int) (head string, completions []string, tail string) {
		rs := []rune(line)
		head = string(rs[:pos])
		tail = string(rs[pos:])

		i := strings.LastIndexAny(head, " \t()'`,@") + 1

		word := head[i:]
		head = head[:i]

		if word == "" {
			return head, names(), tail
		}

		pattern := escape(word) + "*"

		for _, name := range names() {
			if ok, _ := adapted.Match(pattern, name); ok {
				completions = append(completions, name)
			}
		}

		return head, completions, tail
	}
}

// escape quotes the characters in s that have special meaning in a pattern.
func escape(s string) string {
	var b strings.Builder

	for _, r := range s {
		if strings.ContainsRune(`*?[\`, r) {
			b.WriteByte('\\')
		}

		b.WriteRune(r)
	}

	return b.String()
}
