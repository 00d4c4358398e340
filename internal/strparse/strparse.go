// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package strparse provides facilities for parsing spans, tiles and ladders
// written in their String form, intended for use in tests and debug input.
package strparse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/tiling"
)

// Separators are the runes that always form a token of their own in the
// String form of spans ("[3, 23)") and tiles ("10@20").
const Separators = "[](),@"

// Parser splits a string into tokens. Tokens are separated by whitespace; in
// addition user-specified separators are also always separate tokens. For
// example, with the separators `[](),@` the string `10@[0, 20)` results in
// tokens `10`, `@`, `[`, `0`, `,`, `20`, `)`.
//
// All Parser methods throw panics instead of returning errors. The code
// that uses a Parser can recover them and convert them to errors.
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
	start := -1
	flush := func(end int) {
		if start >= 0 {
			p.tokens = append(p.tokens, token{tok: input[start:end], offset: start})
			start = -1
		}
	}
	for i, r := range input {
		switch {
		case unicode.IsSpace(r):
			flush(i)
		case strings.ContainsRune(separators, r):
			flush(i)
			p.tokens = append(p.tokens, token{tok: string(r), offset: i})
		case start < 0:
			start = i
		}
	}
	flush(len(input))
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

// Expect consumes the next tokens, verifying that they exactly match the
// arguments.
func (p *Parser) Expect(tokens ...string) {
	for _, tok := range tokens {
		if res := p.Next(); res != tok {
			p.Errf("expected %q, got %q", tok, res)
		}
	}
}

// Int64 parses the next token as an int64.
func (p *Parser) Int64() int64 {
	x, err := strconv.ParseInt(p.Next(), 10, 64)
	if err != nil {
		p.Errf("cannot parse number: %v", err)
	}
	return x
}

// Span parses a span of the form [start, end). The span is not validated, so
// that tests can construct invalid spans.
func (p *Parser) Span() tiling.Span {
	p.Expect("[")
	start := p.Int64()
	p.Expect(",")
	end := p.Int64()
	p.Expect(")")
	return tiling.Span{Start: start, End: end}
}

// Tile parses a tile of the form scale@start.
func (p *Parser) Tile() tiling.Tile {
	scale := p.Int64()
	p.Expect("@")
	return tiling.Tile{Scale: scale, Start: p.Int64()}
}

// Tiles parses tiles until there are no more tokens.
func (p *Parser) Tiles() []tiling.Tile {
	var tiles []tiling.Tile
	for !p.Done() {
		tiles = append(tiles, p.Tile())
	}
	return tiles
}

// Spans parses spans until there are no more tokens.
func (p *Parser) Spans() []tiling.Span {
	var spans []tiling.Span
	for !p.Done() {
		spans = append(spans, p.Span())
	}
	return spans
}

// Int64s parses integers until there are no more tokens. Brackets are
// skipped, so that a Ladder's String form can be parsed.
func (p *Parser) Int64s() []int64 {
	var vals []int64
	for !p.Done() {
		if tok := p.Peek(); tok == "[" || tok == "]" {
			p.Next()
			continue
		}
		vals = append(vals, p.Int64())
	}
	return vals
}

// Errf panics with an error which includes the original string and the last
// token.
func (p *Parser) Errf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	panic(errors.Errorf("error parsing %q at token %q: %s", p.original, p.lastToken.tok, msg))
}

// Span parses a single span from s.
func Span(s string) tiling.Span {
	p := MakeParser(Separators, s)
	sp := p.Span()
	if !p.Done() {
		p.Errf("unexpected trailing tokens")
	}
	return sp
}

// Tiles parses a whitespace-separated list of tiles from s.
func Tiles(s string) []tiling.Tile {
	p := MakeParser(Separators, s)
	return p.Tiles()
}

// Ladder parses a ladder from a list of scales such as "[10000 1000 100 10 1]".
// The scales are passed to tiling.MakeLadder and the error, if any, returned.
func Ladder(s string) (tiling.Ladder, error) {
	p := MakeParser(Separators, s)
	return tiling.MakeLadder(p.Int64s()...)
}
