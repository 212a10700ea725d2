// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the linsl language.
//
// The linsl lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
//
// Input is consumed one unit at a time. A unit is the shortest run of lines
// from a single source in which every opening parenthesis is closed. Units
// with more closing than opening parentheses, or sources that end before a
// unit is closed, are rejected before any of their tokens are produced.
package lexer

import (
	"io"
	"log"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/linsl/internal/common/failure"
	"github.com/michaelmacinnis/linsl/internal/common/struct/loc"
	"github.com/michaelmacinnis/linsl/internal/common/struct/token"
	"github.com/michaelmacinnis/linsl/internal/reader/source"
)

// T holds the state of the scanner.
type T struct {
	bytes  string     // Unit being scanned.
	first  int        // Index of the current token's first byte.
	index  int        // Index of the current byte.
	queue  []source.I // Sources waiting to be read.
	tokens []*token.T // Scanned tokens waiting to be consumed.
	start  loc.T      // Location of the current token's first byte.
	where  loc.T      // Location of the current byte.
	lines  int        // Lines read from the current source.
}

// New creates a new T with no sources.
func New() *T {
	return &T{}
}

// Append adds the source s to the end of the queue of sources.
// Sources can be appended at any time, including after the lexer
// has run out of input.
func (l *T) Append(s source.I) {
	l.queue = append(l.queue, s)
}

// Discard drops any tokens that remain from the current unit.
func (l *T) Discard() {
	l.tokens = nil
}

// Peek returns the next token without consuming it, or nil if there is no more input.
func (l *T) Peek() (*token.T, error) {
	for len(l.tokens) == 0 {
		if len(l.queue) == 0 {
			return nil, nil
		}

		err := l.gather()
		if err != nil {
			return nil, err
		}
	}

	return l.tokens[0], nil
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next token, or nil if there is no more input.
func (l *T) Token() (*token.T, error) {
	t, err := l.Peek()
	if t != nil {
		l.tokens = l.tokens[1:]
	}

	return t, err
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		l.where.Line++
		l.where.Char = 1
	} else {
		l.where.Char++
	}

	l.index += w
}

// count returns the number of opening and closing parentheses in line,
// ignoring any that appear in a comment.
func count(line string) (opened, closed int) {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}

	return strings.Count(line, "("), strings.Count(line, ")")
}

func (l *T) emit(c token.Class) {
	l.tokens = append(l.tokens, token.New(c, l.Text(), l.start))
	l.skip()
}

// gather reads the next unit from the head of the queue and scans it.
func (l *T) gather() error {
	s := l.queue[0]

	var unit strings.Builder

	opened, closed := 0, 0
	start := loc.T{Char: 1, Line: l.lines + 1, Name: s.Name()}

	for {
		line, err := s.ReadLine(unit.Len() > 0)
		if err == io.EOF {
			l.next()

			if unit.Len() == 0 {
				return nil
			}

			return &failure.Unbalanced{Open: opened, Close: closed, Source: &start}
		} else if err != nil {
			l.next()

			return failure.Wrap(err, "reading "+s.Name())
		}

		l.lines++

		o, c := count(line)
		opened += o
		closed += c

		unit.WriteString(line)

		if closed > opened {
			return &failure.Unbalanced{Open: opened, Close: closed, Source: &start}
		}

		if opened == closed {
			break
		}
	}

	l.scan(unit.String(), start)

	return nil
}

// next discards the source at the head of the queue.
func (l *T) next() {
	log.Printf("finished reading %s", l.queue[0].Name())

	l.queue = l.queue[1:]
	l.lines = 0
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) read() token.Class {
	r, w := l.peek()
	if w > 0 {
		l.accept(r, w)
	}

	return r
}

func (l *T) scan(unit string, start loc.T) {
	l.bytes = unit
	l.first = 0
	l.index = 0
	l.where = start
	l.start = start

	for state := skipWhitespace; state != nil; {
		state = state(l)
	}
}

func (l *T) skip() {
	l.first = l.index
	l.start = l.where
}

// T states.

func afterComma(l *T) action {
	r, w := l.peek()
	if r == '@' {
		l.accept(r, w)
		l.emit(token.Splice)
	} else {
		l.emit(',')
	}

	return skipWhitespace
}

func scanAtom(l *T) action {
	for {
		r, w := l.peek()

		if r == eof {
			l.emit(token.Atom)

			return nil
		}

		if delimiter(r) {
			l.emit(token.Atom)

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipComment(l *T) action {
	for {
		switch l.read() {
		case eof:
			return nil
		case '\n':
			l.skip()

			return skipWhitespace
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r := l.read()

		switch {
		case r == eof:
			return nil
		case unicode.IsSpace(rune(r)):
			l.skip()

			continue
		}

		switch r {
		case '(', ')', '\'', '`':
			l.emit(r)
		case ',':
			return afterComma
		case ';':
			return skipComment
		default:
			return scanAtom
		}
	}
}

// Helper functions.

func delimiter(r token.Class) bool {
	switch r {
	case '(', ')', '\'', '`', ',', ';':
		return true
	}

	return unicode.IsSpace(rune(r))
}
