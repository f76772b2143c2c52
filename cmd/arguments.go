// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"rsfix/conlog"
)

type QArg struct {
	a string
}

func NewArg(s string) QArg {
	return QArg{s}
}

func (a QArg) String() string {
	return a.a
}

func (a QArg) Int() int {
	r, err := strconv.ParseInt(a.a, 10, 0)
	if err != nil {
		return 0
	}
	return int(r)
}

// Uint32 returns 0 for anything that is not a non-negative integer.
func (a QArg) Uint32() uint32 {
	r, err := strconv.ParseUint(a.a, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(r)
}

func (a QArg) Float32() float32 {
	r, err := strconv.ParseFloat(a.a, 32)
	if err != nil {
		return 0
	}
	return float32(r)
}

func (a QArg) Bool() bool {
	switch strings.ToLower(a.a) {
	case "1", "t", "true", "on", "yes":
		return true
	default:
		return false
	}
}

type Arguments struct {
	// each arg on its own
	args []QArg
	// the trimmed input line
	full string
}

func (c *Arguments) Argv(i int) QArg {
	if i < 0 || i >= len(c.args) {
		conlog.DPrintf("Got Argv out of bounds %v, %v", i, len(c.args))
		return QArg{""}
	}
	return c.args[i]
}

func (c *Arguments) Full() string {
	return c.full
}

func (c *Arguments) Args() []QArg {
	return c.args
}

// ArgumentString is everything after the command name with surrounding
// quotes removed.
func (c *Arguments) ArgumentString() string {
	if len(c.args) < 2 {
		return ""
	}
	r := strings.TrimPrefix(c.full, c.args[0].String())
	r = strings.TrimLeftFunc(r, unicode.IsSpace)
	if len(r) > 1 && r[0] == '"' {
		r = strings.Trim(r, "\"\t\n\v\f\r ")
	}
	return r
}

// Parse splits a single console line into arguments. Quoted strings form
// one argument, everything behind "//" and after the first line break is
// dropped.
func Parse(s string) (args Arguments) {
	args.full = strings.TrimFunc(s, unicode.IsSpace)
	args.args = []QArg{}

	sc := scanner{input: args.full}
	for {
		tok, ok := sc.next()
		if !ok {
			return
		}
		args.args = append(args.args, QArg{tok})
	}
}

type scanner struct {
	input string
	pos   int
}

func (s *scanner) peek() rune {
	if s.pos >= len(s.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(s.input[s.pos:])
	return r
}

func (s *scanner) advance() rune {
	if s.pos >= len(s.input) {
		return eof
	}
	r, w := utf8.DecodeRuneInString(s.input[s.pos:])
	s.pos += w
	return r
}

const eof = -1

// next returns the next token, false at the end of the line.
func (s *scanner) next() (string, bool) {
	for isSpace(s.peek()) {
		s.advance()
	}
	r := s.peek()
	switch {
	case r == eof || isEndOfLine(r):
		return "", false
	case r == '/' && strings.HasPrefix(s.input[s.pos:], "//"):
		return "", false
	case r == '"':
		s.advance()
		start := s.pos
		for {
			switch s.peek() {
			case '"':
				tok := s.input[start:s.pos]
				s.advance()
				return tok, true
			case eof, '\n', '\r':
				// unterminated, take what we have
				return s.input[start:s.pos], true
			}
			s.advance()
		}
	case r > ' ':
		start := s.pos
		for s.peek() > ' ' {
			s.advance()
		}
		return s.input[start:s.pos], true
	}
	conlog.DPrintf("unhandled char: %#U", r)
	return "", false
}

func isEndOfLine(r rune) bool {
	return r == '\r' || r == '\n'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
