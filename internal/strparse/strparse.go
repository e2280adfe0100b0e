// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package strparse provides facilities for parsing strings, intended for use in
// tests, debug input and command line arguments.
package strparse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// Parser is a helper used to implement parsing of strings, like
// bintree.Parse.
//
// It takes a string and splits it into tokens. Tokens are separated by
// whitespace; in addition user-specified separators are also always separate
// tokens. For example, when passed the separators `[],` the string
// `[5,[3,_,_],8]` results in tokens `[`, `5`, `,`, `[`, `3`, `,`, `_`, `,`,
// `_`, `]`, `,`, `8`, `]`.
//
// All Parser methods throw panics instead of returning errors. The code
// that uses a Parser can recover them and convert them to errors with
// Recover.
type Parser struct {
	original  string
	tokens    []token
	lastToken token
}

type token struct {
	tok    string
	offset int
}

// MakeParser constructs a new Parser that converts any instance of the runes
// contained in [separators] into separate tokens, and consumes the provided
// input string.
func MakeParser(separators string, input string) Parser {
	p := Parser{original: input}

	s := input
	off := 0
	for len(s) > 0 {
		nonWhiteSpacePos := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
		switch nonWhiteSpacePos {
		case -1:
			// Only whitespace.
			off += len(s)
			s = s[len(s):]
		case 0:
			// s is the beginning of a non-whitespace token.
			// It might be a separator, or it might be an arbitrary token
			wsPos := strings.IndexFunc(s, unicode.IsSpace)
			switch pos := strings.IndexAny(s, separators); pos {
			case -1:
				if wsPos == -1 {
					wsPos = len(s)
				}
				p.tokens = append(p.tokens, token{tok: s[:wsPos], offset: off})
				off += wsPos
				s = s[wsPos:]
			case 0:
				p.tokens = append(p.tokens, token{tok: s[:1], offset: off})
				off += 1
				s = s[1:]
			default:
				if wsPos != -1 && wsPos < pos {
					pos = wsPos
				}
				p.tokens = append(p.tokens, token{tok: s[:pos], offset: off})
				off += pos
				s = s[pos:]
			}
		default:
			// Whitespace.
			off += nonWhiteSpacePos
			s = s[nonWhiteSpacePos:]
		}
	}
	return p
}

// Done returns true if there are no more tokens.
func (p *Parser) Done() bool {
	return len(p.tokens) == 0
}

// Peek returns the next token, without consuming the token. Returns "" if there
// are no more tokens.
func (p *Parser) Peek() string {
	if p.Done() {
		p.lastToken = token{}
		return ""
	}
	p.lastToken = p.tokens[0]
	return p.tokens[0].tok
}

// Next returns the next token, or "" if there are no more tokens.
func (p *Parser) Next() string {
	res := p.Peek()
	if res != "" {
		p.tokens = p.tokens[1:]
	}
	return res
}

// TryNext consumes the next token if it equals tok.
func (p *Parser) TryNext(tok string) bool {
	if p.Peek() == tok {
		p.Next()
		return true
	}
	return false
}

// Remaining returns all the remaining tokens, separated by spaces.
func (p *Parser) Remaining() string {
	var buf strings.Builder
	for _, tok := range p.tokens {
		if buf.Len() > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(tok.tok)
	}
	p.tokens = nil
	return buf.String()
}

// Expect consumes the next tokens, verifying that they exactly match the
// arguments.
func (p *Parser) Expect(tokens ...string) {
	for _, tok := range tokens {
		if res := p.Next(); res != tok {
			p.Errf("expected %q, got %q", tok, res)
		}
	}
}

// ExpectDone verifies that all tokens were consumed.
func (p *Parser) ExpectDone() {
	if !p.Done() {
		p.Errf("unexpected trailing input %q", p.Remaining())
	}
}

// Int parses the next token as an integer.
func (p *Parser) Int() int {
	x, err := strconv.Atoi(p.Next())
	if err != nil {
		p.Errf("cannot parse number: %v", err)
	}
	return x
}

// Errf panics with an error which includes the original string and the last
// token.
func (p *Parser) Errf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	panic(errors.Errorf("error parsing %q at token %q: %s", p.original, p.lastToken.tok, msg))
}

// Recover converts a panic thrown by a Parser into an error stored in *err.
// It must be deferred directly by the function that drives the Parser. Panics
// that do not carry an error are re-thrown.
func Recover(err *error) {
	if r := recover(); r != nil {
		e, ok := r.(error)
		if !ok {
			panic(r)
		}
		*err = e
	}
}
