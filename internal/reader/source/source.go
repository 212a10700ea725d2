// Released under an MIT license. See LICENSE.

// Package source provides the line-buffered inputs consumed by the linsl lexer.
package source

import (
	"bufio"
	"io"
	"strings"
)

// I (source) is a named, line-buffered input.
type I interface {
	// Name labels the source in diagnostics.
	Name() string

	// ReadLine returns the next line, including its newline if it has one.
	// Continued is true when the line is needed to complete an open unit.
	// At the end of the source ReadLine returns io.EOF.
	ReadLine(continued bool) (string, error)
}

// T (source) reads lines from an io.Reader.
type T struct {
	name string
	r    *bufio.Reader
}

type source = T

// New creates a source named name that reads from r.
func New(name string, r io.Reader) *source {
	return &source{name: name, r: bufio.NewReader(r)}
}

// String creates a source named name that reads from the text s.
func String(name, s string) *source {
	return New(name, strings.NewReader(s))
}

// Name returns the label for the source s.
func (s *source) Name() string {
	return s.name
}

// ReadLine returns the next line from s.
func (s *source) ReadLine(_ bool) (string, error) {
	line, err := s.r.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}

	return line, err
}
