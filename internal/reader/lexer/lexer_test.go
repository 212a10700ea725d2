package lexer

import (
	"errors"
	"io"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/linsl/internal/common/failure"
	"github.com/michaelmacinnis/linsl/internal/common/struct/loc"
	"github.com/michaelmacinnis/linsl/internal/common/struct/token"
	"github.com/michaelmacinnis/linsl/internal/reader/source"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)

	os.Exit(m.Run())
}

func TestAtoms(t *testing.T) {
	h := setup(t, "Atoms")

	h.scan("(+ 1 2.5 foo-bar?)\n",
		h.at(1, 1, '(', "("),
		h.at(1, 2, token.Atom, "+"),
		h.at(1, 4, token.Atom, "1"),
		h.at(1, 6, token.Atom, "2.5"),
		h.at(1, 10, token.Atom, "foo-bar?"),
		h.at(1, 18, ')', ")"),
		nil,
	)
}

func TestQuotation(t *testing.T) {
	h := setup(t, "Quotation")

	h.scan("'a `(b ,c ,@d)\n",
		h.at(1, 1, '\'', "'"),
		h.at(1, 2, token.Atom, "a"),
		h.at(1, 4, '`', "`"),
		h.at(1, 5, '(', "("),
		h.at(1, 6, token.Atom, "b"),
		h.at(1, 8, ',', ","),
		h.at(1, 9, token.Atom, "c"),
		h.at(1, 11, token.Splice, ",@"),
		h.at(1, 13, token.Atom, "d"),
		h.at(1, 14, ')', ")"),
		nil,
	)
}

func TestDelimitersEndAtoms(t *testing.T) {
	h := setup(t, "DelimitersEndAtoms")

	h.scan("a'b,c;d\n",
		h.at(1, 1, token.Atom, "a"),
		h.at(1, 2, '\'', "'"),
		h.at(1, 3, token.Atom, "b"),
		h.at(1, 4, ',', ","),
		h.at(1, 5, token.Atom, "c"),
		nil,
	)
}

func TestComments(t *testing.T) {
	h := setup(t, "Comments")

	h.scan("; a comment with a ( paren\n(a) ; and (((\n",
		h.at(2, 1, '(', "("),
		h.at(2, 2, token.Atom, "a"),
		h.at(2, 3, ')', ")"),
		nil,
	)
}

func TestMultiLineUnit(t *testing.T) {
	h := setup(t, "MultiLineUnit")

	h.scan("(define x\n  (+ 1\n     2))\n",
		h.at(1, 1, '(', "("),
		h.at(1, 2, token.Atom, "define"),
		h.at(1, 9, token.Atom, "x"),
		h.at(2, 3, '(', "("),
		h.at(2, 4, token.Atom, "+"),
		h.at(2, 6, token.Atom, "1"),
		h.at(3, 6, token.Atom, "2"),
		h.at(3, 7, ')', ")"),
		h.at(3, 8, ')', ")"),
		nil,
	)
}

func TestUnbalancedClose(t *testing.T) {
	h := setup(t, "UnbalancedClose")

	h.lexer.Append(source.String(h.name, "(a))\n(b)\n"))

	_, err := h.lexer.Token()
	h.unbalanced(err, 1, 2)

	h.expect(
		h.at(2, 1, '(', "("),
		h.at(2, 2, token.Atom, "b"),
		h.at(2, 3, ')', ")"),
		nil,
	)
}

func TestUnbalancedOpen(t *testing.T) {
	h := setup(t, "UnbalancedOpen")

	h.lexer.Append(source.String(h.name, "(a\n(b\n"))

	_, err := h.lexer.Token()
	h.unbalanced(err, 2, 0)

	h.expect(nil)
}

func TestMultipleSources(t *testing.T) {
	l := New()

	l.Append(source.String("first", "a\nb"))
	l.Append(source.String("second", "c\n"))

	expected := []loc.T{
		{Name: "first", Line: 1, Char: 1},
		{Name: "first", Line: 2, Char: 1},
		{Name: "second", Line: 1, Char: 1},
	}

	for _, e := range expected {
		tok, err := l.Token()
		require.NoError(t, err)
		require.NotNil(t, tok)
		assert.Equal(t, e, *tok.Source())
	}

	tok, err := l.Token()
	require.NoError(t, err)
	assert.Nil(t, tok)

	// Sources can be appended after the lexer runs dry.
	l.Append(source.String("third", "d\n"))

	tok, err = l.Token()
	require.NoError(t, err)
	require.NotNil(t, tok)
	assert.Equal(t, "d", tok.Value())
	assert.Equal(t, "third:1:1", tok.Source().String())
}

func TestPeek(t *testing.T) {
	l := New()
	l.Append(source.String("test", "a b\n"))

	for i := 0; i < 3; i++ {
		tok, err := l.Peek()
		require.NoError(t, err)
		assert.Equal(t, "a", tok.Value())
	}

	tok, _ := l.Token()
	assert.Equal(t, "a", tok.Value())

	tok, _ = l.Peek()
	assert.Equal(t, "b", tok.Value())
}

func TestDiscard(t *testing.T) {
	l := New()
	l.Append(source.String("test", "(a b c)\n(d)\n"))

	tok, _ := l.Token()
	assert.Equal(t, "(", tok.Value())

	l.Discard()

	tok, _ = l.Token()
	assert.Equal(t, "(", tok.Value())
	assert.Equal(t, 2, tok.Source().Line)
}

func TestReadFailure(t *testing.T) {
	l := New()
	l.Append(&broken{})
	l.Append(source.String("test", "ok\n"))

	_, err := l.Token()
	require.Error(t, err)
	assert.True(t, failure.IsInternal(err))
	assert.True(t, errors.Is(err, errBroken))

	tok, err := l.Token()
	require.NoError(t, err)
	assert.Equal(t, "ok", tok.Value())
}

func TestContinuation(t *testing.T) {
	r := &recording{lines: []string{"(a\n", "b\n", ")\n", "c\n"}}

	l := New()
	l.Append(r)

	values := []string{}

	for {
		tok, err := l.Token()
		require.NoError(t, err)

		if tok == nil {
			break
		}

		values = append(values, tok.Value())
	}

	assert.Equal(t, []string{"(", "a", "b", ")", "c"}, values)
	assert.Equal(t, []bool{false, true, true, false, false}, r.continued)
}

var errBroken = errors.New("broken")

type broken struct{}

func (*broken) Name() string {
	return "broken"
}

func (*broken) ReadLine(_ bool) (string, error) {
	return "", errBroken
}

type recording struct {
	continued []bool
	lines     []string
}

func (*recording) Name() string {
	return "recording"
}

func (r *recording) ReadLine(continued bool) (string, error) {
	r.continued = append(r.continued, continued)

	if len(r.lines) == 0 {
		return "", io.EOF
	}

	line := r.lines[0]
	r.lines = r.lines[1:]

	return line, nil
}

type harness struct {
	lexer *T
	name  string
	t     *testing.T
}

func setup(t *testing.T, label string) *harness {
	return &harness{
		lexer: New(),
		name:  label,
		t:     t,
	}
}

func (h *harness) at(line, char int, c token.Class, s string) *token.T {
	return token.New(c, s, loc.T{Char: char, Line: line, Name: h.name})
}

func (h *harness) expect(tokens ...*token.T) {
	for _, e := range tokens {
		a, err := h.lexer.Token()
		require.NoError(h.t, err)

		switch {
		case a == nil && e == nil:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", e)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case a.String() != e.String():
			h.t.Fatalf("Expected %v; got %v", e, a)
		}
	}
}

func (h *harness) scan(s string, tokens ...*token.T) {
	h.lexer.Append(source.String(h.name, s))
	h.expect(tokens...)
}

func (h *harness) unbalanced(err error, opened, closed int) {
	var u *failure.Unbalanced

	require.True(h.t, errors.As(err, &u), "expected unbalanced parentheses, got %v", err)
	assert.Equal(h.t, opened, u.Open)
	assert.Equal(h.t, closed, u.Close)
}
