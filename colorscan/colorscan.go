/*
Package colorscan finds CSS colors inside property values.

A property value like

	1px solid hsl(120, 100%, 25%)

is tokenized with the CSS scanner of the Gorilla toolkit. Hash tokens,
identifiers and the color functions rgb(), rgba(), hsl() and hsla() are
candidates; a candidate is reported if package csscolor recognizes it as a
color. Everything else (lengths, keywords like "solid", url()s, strings,
comments) is left alone.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package colorscan

import (
	"strings"

	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/csscolor/csscolor"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'csscolor.scan'.
func tracer() tracing.Trace {
	return tracing.Select("csscolor.scan")
}

// Match is a color found in a property value.
type Match struct {
	Offset int            // byte offset in the value
	Text   string         // source text, e.g. "rgb(0, 0, 255)"
	Color  csscolor.Color // always valid
}

// End is the byte offset after the match.
func (m Match) End() int {
	return m.Offset + len(m.Text)
}

var colorFunctions = map[string]bool{
	"rgb(":  true,
	"rgba(": true,
	"hsl(":  true,
	"hsla(": true,
}

// Find reports all colors in value, in order of appearance.
func Find(value string) []Match {
	var matches []Match
	s := scanner.New(value)
	pos := 0
	// locate finds the next token in the source and advances pos past it
	locate := func(tok *scanner.Token) int {
		at := strings.Index(value[pos:], tok.Value)
		if at < 0 {
			return -1
		}
		start := pos + at
		pos = start + len(tok.Value)
		return start
	}
	for {
		tok := s.Next()
		if tok.Type == scanner.TokenEOF || tok.Type == scanner.TokenError {
			break
		}
		start := locate(tok)
		if start < 0 {
			tracer().Errorf("lost track of token %q in %q", tok.Value, value)
			break
		}
		switch tok.Type {
		case scanner.TokenHash, scanner.TokenIdent:
			matches = appendColor(matches, start, tok.Value)
		case scanner.TokenFunction:
			if !colorFunctions[tok.Value] {
				continue
			}
			end, ok := closingParen(s, locate)
			if !ok {
				return matches
			}
			matches = appendColor(matches, start, value[start:end])
		}
	}
	return matches
}

// closingParen consumes tokens up to and including the ")" closing a color
// function and returns the offset after it.
func closingParen(s *scanner.Scanner, locate func(*scanner.Token) int) (int, bool) {
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF, scanner.TokenError:
			return 0, false
		case scanner.TokenChar:
			if tok.Value == ")" {
				at := locate(tok)
				return at + 1, at >= 0
			}
		}
		if locate(tok) < 0 {
			return 0, false
		}
	}
}

func appendColor(matches []Match, offset int, text string) []Match {
	c := csscolor.New(text)
	if !c.IsValid() {
		return matches
	}
	return append(matches, Match{Offset: offset, Text: text, Color: c})
}

// Rewrite replaces every color in value by its rendering in unit u, subject
// to the alpha restrictions of csscolor.Color.ConvertTo. It returns the new
// value and the number of colors found.
func Rewrite(value string, u csscolor.Unit) (string, int) {
	matches := Find(value)
	if len(matches) == 0 {
		return value, 0
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(value[last:m.Offset])
		b.WriteString(m.Color.ConvertTo(u))
		last = m.End()
	}
	b.WriteString(value[last:])
	tracer().Debugf("rewrote %d colors in %q", len(matches), value)
	return b.String(), len(matches)
}
