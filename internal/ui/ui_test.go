package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func names() []string {
	return []string{"*", "+", "car", "cdr", "cons", "define", "empty?", "eqt?"}
}

func TestComplete(t *testing.T) {
	complete := completer(names)

	tests := []struct {
		line        string
		pos         int
		head        string
		completions []string
		tail        string
	}{
		{"(c", 2, "(", []string{"car", "cdr", "cons"}, ""},
		{"(co", 3, "(", []string{"cons"}, ""},
		{"(map (lambda (x) (d", 19, "(map (lambda (x) (", []string{"define"}, ""},
		{"(e x)", 2, "(", []string{"empty?", "eqt?"}, " x)"},
		{"(empty?", 7, "(", []string{"empty?"}, ""},
		{"(*", 2, "(", []string{"*"}, ""},
		{"'(z", 3, "'(", nil, ""},
	}

	for _, test := range tests {
		head, completions, tail := complete(test.line, test.pos)

		assert.Equal(t, test.head, head, test.line)
		assert.Equal(t, test.completions, completions, test.line)
		assert.Equal(t, test.tail, tail, test.line)
	}
}

func TestCompleteEmptyWord(t *testing.T) {
	head, completions, tail := completer(names)("(car ", 5)

	assert.Equal(t, "(car ", head)
	assert.Equal(t, names(), completions)
	assert.Empty(t, tail)
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `\*`, escape("*"))
	assert.Equal(t, `a\?b\[c\\`, escape(`a?b[c\`))
	assert.Equal(t, "plain", escape("plain"))
}
