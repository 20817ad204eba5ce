package csscolor

import (
	"github.com/npillmayer/csscolor/maybe"
)

// Channels is the canonical form of a color: 8-bit red, green and blue
// channels and an alpha value in [0,1]. Colors read from a unit without
// alpha have A = 1.
type Channels struct {
	R, G, B uint8
	A       float64
}

const (
	flagAlpha       uint8 = 0x01 // read from an alpha-bearing unit or "transparent"
	flagTransparent uint8 = 0x02 // read from the literal "transparent"
)

// Color is an immutable CSS color value. The zero value is an invalid color.
type Color struct {
	ch    Channels
	unit  Unit
	flags uint8
}

// New parses a CSS color. It never fails; if s is not recognized, the
// result has unit UnitInvalid. All whitespace in s is ignored.
func New(s string) Color {
	s = stripSpace(s)
	for _, gr := range grammars {
		ch, ok := gr.parse(s)
		if !ok {
			continue
		}
		c := Color{ch: ch, unit: gr.unit}
		if gr.unit.HasAlpha() {
			c.flags |= flagAlpha
		}
		if s == transparentKeyword {
			c.flags |= flagAlpha | flagTransparent
		}
		return c
	}
	tracer().Debugf("not a CSS color: %q", s)
	return Color{}
}

// FromValue parses v if it is a string or a non-nil *string. Any other
// value yields an invalid color.
func FromValue(v interface{}) Color {
	switch s := v.(type) {
	case string:
		return New(s)
	case *string:
		if s != nil {
			return New(*s)
		}
	}
	return Color{}
}

// Parse is New as an option type: Nothing for input which is not a color.
func Parse(s string) maybe.Maybe[Color] {
	c := New(s)
	return maybe.Of(c, c.IsValid())
}

// Unit is the unit the color has been read from.
func (c Color) Unit() Unit {
	return c.unit
}

// IsValid is false if the input has not been recognized as a color.
func (c Color) IsValid() bool {
	return c.unit != UnitInvalid
}

// HasAlpha is true for colors read from rgba, hsla or "transparent".
func (c Color) HasAlpha() bool {
	return c.flags&flagAlpha > 0
}

// IsTransparent is true for colors read from the keyword "transparent".
func (c Color) IsTransparent() bool {
	return c.flags&flagTransparent > 0
}

// Channels returns the canonical form. ok is false for invalid colors.
func (c Color) Channels() (ch Channels, ok bool) {
	if !c.IsValid() {
		return Channels{}, false
	}
	return c.ch, true
}

// String renders the color in the unit it has been read from, subject to the
// alpha restrictions of ConvertTo.
func (c Color) String() string {
	return c.ConvertTo(c.unit)
}

// --- Matching --------------------------------------------------------------

// Match starts a pattern match on the outcome of parsing:
//
//	var ch csscolor.Channels
//	switch m := c.Match(); m {
//	case m.Valid(&ch):
//	    ...
//	case m.Invalid():
//	    ...
//	}
//
// Channel data is only handed out for valid colors.
func (c Color) Match() *Matcher {
	return &Matcher{color: c}
}

// Matcher is the case selector returned by Color.Match.
// Every case returns the matcher on success and nil otherwise.
type Matcher struct {
	color Color
}

// Valid matches any valid color and copies its channels to ch, if ch is non-nil.
func (m *Matcher) Valid(ch *Channels) *Matcher {
	if !m.color.IsValid() {
		return nil
	}
	if ch != nil {
		*ch = m.color.ch
	}
	return m
}

// Invalid matches input which was not a color.
func (m *Matcher) Invalid() *Matcher {
	if m.color.IsValid() {
		return nil
	}
	return m
}

// Unit matches a color read from unit u.
func (m *Matcher) Unit(u Unit) *Matcher {
	if m.color.unit != u {
		return nil
	}
	return m
}

// Alpha matches colors carrying an alpha channel and copies it to a, if a is non-nil.
func (m *Matcher) Alpha(a *float64) *Matcher {
	if !m.color.HasAlpha() {
		return nil
	}
	if a != nil {
		*a = m.color.ch.A
	}
	return m
}
