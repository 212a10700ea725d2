package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michaelmacinnis/linsl/internal/system/options"
)

func TestCommand(t *testing.T) {
	options.ParseArgs([]string{"-c", "(define x 20) (+ x 22)"}, false)

	var out, errs bytes.Buffer

	status := start(strings.NewReader(""), &out, &errs)

	assert.Equal(t, 0, status)
	assert.Equal(t, "x\n42\n", out.String())
	assert.Empty(t, errs.String())
}

func TestDebugLogging(t *testing.T) {
	options.ParseArgs([]string{"-d", "-c", "1"}, false)

	var out, errs bytes.Buffer

	status := start(strings.NewReader(""), &out, &errs)

	assert.Equal(t, 0, status)
	assert.Equal(t, "1\n", out.String())
	assert.Contains(t, errs.String(), "linsl: loaded boot script")
	assert.Contains(t, errs.String(), "linsl: finished reading command")

	options.ParseArgs([]string{"-c", "1"}, false)

	errs.Reset()

	start(strings.NewReader(""), &out, &errs)

	assert.Empty(t, errs.String())
}

func TestFilesThenStdin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "square.lisp")

	err := os.WriteFile(path, []byte("; Squares.\n(define square\n  (lambda (x) (* x x)))\n"), 0o600)
	assert.NoError(t, err)

	options.ParseArgs([]string{"-s", path}, false)

	var out, errs bytes.Buffer

	status := start(strings.NewReader("(map square '(1 2 3))\n"), &out, &errs)

	assert.Equal(t, 0, status)
	assert.Equal(t, "square\n(1 4 9)\n", out.String())
	assert.Empty(t, errs.String())
}

func TestFailureStatus(t *testing.T) {
	options.ParseArgs([]string{"-n", "-c", "(map car '())"}, false)

	var out, errs bytes.Buffer

	status := start(strings.NewReader(""), &out, &errs)

	assert.Equal(t, 1, status)
	assert.Equal(t, "Syntax error at command:1:2: unbound symbol 'map'\n", errs.String())
}

func TestMissingFile(t *testing.T) {
	options.ParseArgs([]string{filepath.Join(t.TempDir(), "missing.lisp")}, false)

	var out, errs bytes.Buffer

	assert.Equal(t, 1, start(strings.NewReader(""), &out, &errs))
	assert.NotEmpty(t, errs.String())
}

func TestVersion(t *testing.T) {
	options.ParseArgs([]string{"-v"}, false)

	var out, errs bytes.Buffer

	assert.Equal(t, 0, start(strings.NewReader(""), &out, &errs))
	assert.Equal(t, "linsl "+version+"\n", out.String())
}

func TestExamples(t *testing.T) {
	tests := []struct {
		file     string
		expected []string
	}{
		{"closures.lisp", []string{"scale", "factor", "10", "50", "(2 4 6)"}},
		{"lists.lisp", []string{
			"countdown", "xs", "(1 2 3 4 5)", "5", "(5 4 3)", "120", "(first 5 rest 4 3 2 1)",
		}},
		{"macros.lisp", []string{"let", "25", "unless", "ok", "()"}},
	}

	for _, test := range tests {
		options.ParseArgs([]string{filepath.Join("examples", test.file)}, false)

		var out, errs bytes.Buffer

		status := start(strings.NewReader(""), &out, &errs)

		assert.Equal(t, 0, status, test.file)
		assert.Empty(t, errs.String(), test.file)
		assert.Equal(t, strings.Join(test.expected, "\n")+"\n", out.String(), test.file)
	}
}
