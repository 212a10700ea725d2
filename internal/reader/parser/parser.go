// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the linsl language.
//
// Quotation is expanded as expressions are parsed. A quoted expression
// becomes a quote form and a quasiquoted expression becomes calls to
// append, list and quote, so the evaluator never sees a quasiquote.
package parser

import (
	"io"

	"github.com/michaelmacinnis/linsl/internal/common/failure"
	"github.com/michaelmacinnis/linsl/internal/common/interface/cell"
	"github.com/michaelmacinnis/linsl/internal/common/struct/loc"
	"github.com/michaelmacinnis/linsl/internal/common/struct/token"
	"github.com/michaelmacinnis/linsl/internal/common/type/boolean"
	"github.com/michaelmacinnis/linsl/internal/common/type/list"
	"github.com/michaelmacinnis/linsl/internal/common/type/num"
	"github.com/michaelmacinnis/linsl/internal/common/type/sym"
)

// Tokenizer is the source of tokens for a parser.
type Tokenizer interface {
	Peek() (*token.T, error)
	Token() (*token.T, error)
}

// T holds the state of the parser.
type T struct {
	last   *loc.T    // Location of the most recently consumed token.
	tokens Tokenizer // Source of tokens.
}

// New creates a new parser that reads tokens from t.
func New(t Tokenizer) *T {
	return &T{tokens: t}
}

// Parse consumes the tokens for exactly one expression and returns it.
// If there are no more tokens, Parse returns io.EOF.
func (p *T) Parse() (cell.I, error) {
	t, err := p.tokens.Peek()
	if err != nil {
		return nil, err
	}

	if t == nil {
		return nil, io.EOF
	}

	return p.expression(false)
}

// <expression> ::= '(' <expression>* ')'
//                | '\'' <expression>
//                | '`' <expression>
//                | ',' <expression>
//                | Splice <expression>
//                | Atom .
func (p *T) expression(quasi bool) (cell.I, error) {
	t, err := p.consume()
	if err != nil {
		return nil, err
	}

	switch t.Class() {
	case '(':
		return p.list(t, quasi)

	case ')':
		return nil, failure.Syntaxf(t.Source(), "unexpected ')'")

	case '\'':
		c, err := p.expression(quasi)
		if err != nil {
			return nil, err
		}

		return list.Located(t.Source(), symbol(t.Source(), "quote"), c), nil

	case '`':
		c, err := p.expression(true)
		if err != nil {
			return nil, err
		}

		return expand(c)

	case ',':
		c, err := p.expression(false)
		if err != nil || !quasi {
			return c, err
		}

		return &unquote{form: c, source: t.Source()}, nil

	case token.Splice:
		if !quasi {
			return nil, failure.Syntaxf(t.Source(), "',@' outside of quasiquote")
		}

		c, err := p.expression(false)
		if err != nil {
			return nil, err
		}

		return &unquote{form: c, source: t.Source(), splice: true}, nil
	}

	return atom(t), nil
}

// <list> ::= <expression>* ')' .
func (p *T) list(open *token.T, quasi bool) (cell.I, error) {
	elements := []cell.I{}

	for {
		t, err := p.tokens.Peek()
		if err != nil {
			return nil, err
		}

		if t == nil {
			return nil, failure.Syntaxf(open.Source(), "expected ')' before end of input")
		}

		if t.Is(')') {
			_, err = p.consume()

			return list.Located(open.Source(), elements...), err
		}

		c, err := p.expression(quasi)
		if err != nil {
			return nil, err
		}

		elements = append(elements, c)
	}
}

func (p *T) consume() (*token.T, error) {
	t, err := p.tokens.Token()
	if err != nil {
		return nil, err
	}

	if t == nil {
		return nil, failure.Syntaxf(p.last, "unexpected end of input")
	}

	p.last = t.Source()

	return t, nil
}

// Helper functions.

func atom(t *token.T) cell.I {
	s := t.Value()

	if c := boolean.New(s); c != nil {
		return c
	}

	if c, ok := num.Parse(s); ok {
		return c
	}

	return sym.Token(t)
}

// contains returns true if an unquote appears anywhere in c.
func contains(c cell.I) bool {
	if _, ok := c.(*unquote); ok {
		return true
	}

	if l := list.To(c); l != nil {
		for _, e := range l.Elements() {
			if contains(e) {
				return true
			}
		}
	}

	return false
}

// expand rewrites the quasiquoted expression c.
//
//	`x             => (quote x)
//	`,x            => x
//	`(a ,b ,@c (d ,e))
//	    => (append (list (quote a)) (list b) c (list (append ...)))
func expand(c cell.I) (cell.I, error) {
	if u, ok := c.(*unquote); ok {
		if u.splice {
			return nil, failure.Syntaxf(u.source, "',@' is not inside a list")
		}

		return u.form, nil
	}

	l := list.To(c)
	if l == nil || l.Empty() {
		return list.New(sym.New("quote"), c), nil
	}

	forms := make([]cell.I, 0, l.Length()+1)
	forms = append(forms, symbol(l.Source(), "append"))

	for _, e := range l.Elements() {
		if u, ok := e.(*unquote); ok {
			if u.splice {
				forms = append(forms, u.form)
			} else {
				forms = append(forms, list.New(symbol(u.source, "list"), u.form))
			}

			continue
		}

		if contains(e) {
			x, err := expand(e)
			if err != nil {
				return nil, err
			}

			e = x
		} else {
			e = list.New(sym.New("quote"), e)
		}

		forms = append(forms, list.New(sym.New("list"), e))
	}

	return list.Located(l.Source(), forms...), nil
}

// symbol creates a sym that appears to have been read at source.
func symbol(source *loc.T, s string) cell.I {
	if source == nil {
		return sym.New(s)
	}

	return sym.Token(token.New(token.Atom, s, *source))
}

// An unquote marks a ',' or ',@' form inside a quasiquote.
// Every unquote is removed by expand.
type unquote struct {
	form   cell.I
	source *loc.T
	splice bool
}

func (u *unquote) Equal(c cell.I) bool {
	o, ok := c.(*unquote)

	return ok && o.splice == u.splice && o.form.Equal(u.form)
}

func (u *unquote) Name() string {
	return "unquote"
}

func (u *unquote) String() string {
	if u.splice {
		return ",@" + u.form.String()
	}

	return "," + u.form.String()
}
