package csscolor

import (
	"errors"
	"fmt"

	"github.com/npillmayer/csscolor/result"
)

// NotFound is returned by Nickname for colors with an alpha channel, for
// which no keyword is defined.
const NotFound = "not found"

// Errors returned by Strict.
var (
	ErrInvalidColor = errors.New("csscolor: not a color")
	ErrAlphaLoss    = errors.New("csscolor: unit cannot represent alpha")
	ErrUnknownUnit  = errors.New("csscolor: unknown unit")
)

// Rendering rules shared by all accessors:
//
//   - invalid colors render as ""
//   - transparent renders as "transparent" in every unit except hsla,
//     where it is "hsla(0, 0%, 0%, 0)"
//
// Hex and ShortHex have no alpha channel and render colors with alpha as
// rgba. RGB and HSL drop the alpha channel; use LosesAlpha or Strict to
// detect this.

// Hex renders "#RRGGBB" with upper-case digits.
func (c Color) Hex() string {
	switch {
	case !c.IsValid():
		return ""
	case c.IsTransparent():
		return transparentKeyword
	case c.HasAlpha():
		return c.RGBA()
	}
	return c.hex()
}

func (c Color) hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.ch.R, c.ch.G, c.ch.B)
}

// ShortHex renders "#RGB" if every channel has two identical hex digits,
// and falls back to Hex otherwise.
func (c Color) ShortHex() string {
	if !c.IsValid() || c.HasAlpha() {
		return c.Hex()
	}
	h := c.hex()
	if h[1] == h[2] && h[3] == h[4] && h[5] == h[6] {
		return string([]byte{'#', h[1], h[3], h[5]})
	}
	return h
}

// RGB renders "rgb(r, g, b)". The alpha channel, if any, is dropped.
func (c Color) RGB() string {
	switch {
	case !c.IsValid():
		return ""
	case c.IsTransparent():
		return transparentKeyword
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", c.ch.R, c.ch.G, c.ch.B)
}

// RGBA renders "rgba(r, g, b, a)", with a = 1 for colors without alpha.
func (c Color) RGBA() string {
	switch {
	case !c.IsValid():
		return ""
	case c.IsTransparent():
		return transparentKeyword
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.ch.R, c.ch.G, c.ch.B, formatNumber(c.ch.A))
}

// HSL renders "hsl(h, s%, l%)". The alpha channel, if any, is dropped.
func (c Color) HSL() string {
	switch {
	case !c.IsValid():
		return ""
	case c.IsTransparent():
		return transparentKeyword
	}
	h, s, l := rgbToHSL(c.ch.R, c.ch.G, c.ch.B)
	return fmt.Sprintf("hsl(%s, %d%%, %d%%)", formatNumber(h), s, l)
}

// HSLA renders "hsla(h, s%, l%, a)", with a = 1 for colors without alpha.
func (c Color) HSLA() string {
	switch {
	case !c.IsValid():
		return ""
	case c.IsTransparent():
		return "hsla(0, 0%, 0%, 0)"
	}
	h, s, l := rgbToHSL(c.ch.R, c.ch.G, c.ch.B)
	return fmt.Sprintf("hsla(%s, %d%%, %d%%, %s)", formatNumber(h), s, l, formatNumber(c.ch.A))
}

// Nickname renders the CSS keyword for the color. Colors without a keyword
// render as RGB, colors with alpha as NotFound.
func (c Color) Nickname() string {
	switch {
	case !c.IsValid():
		return ""
	case c.IsTransparent():
		return transparentKeyword
	case c.HasAlpha():
		return NotFound
	}
	rgb := c.RGB()
	if name, ok := NicknameFor(rgb); ok {
		return name
	}
	return rgb
}

// LosesAlpha reports whether unit u is unable to carry the alpha channel
// of c. It is false for colors without alpha and for "transparent", which
// every unit renders losslessly.
func (c Color) LosesAlpha(u Unit) bool {
	return c.HasAlpha() && !c.IsTransparent() && !u.HasAlpha()
}

// ConvertTo renders c in unit u. Colors with alpha are only rendered as
// rgba or hsla: hsl is promoted to hsla, every other unit to rgba.
// Unknown units render as rgb, or rgba for colors with alpha.
func (c Color) ConvertTo(u Unit) string {
	if c.HasAlpha() {
		switch u {
		case UnitHSL, UnitHSLA:
			return c.HSLA()
		}
		return c.RGBA()
	}
	switch u {
	case UnitNickname:
		return c.Nickname()
	case UnitHex:
		return c.Hex()
	case UnitShortHex:
		return c.ShortHex()
	case UnitRGBA:
		return c.RGBA()
	case UnitHSL:
		return c.HSL()
	case UnitHSLA:
		return c.HSLA()
	}
	return c.RGB()
}

// Strict renders c in unit u, refusing instead of promoting: it returns an
// error wrapping ErrAlphaLoss whenever LosesAlpha(u) holds.
func (c Color) Strict(u Unit) result.Result[string] {
	switch {
	case !c.IsValid():
		return result.Err[string](ErrInvalidColor)
	case !u.IsValid():
		return result.Err[string](fmt.Errorf("%w: %v", ErrUnknownUnit, u))
	case c.LosesAlpha(u):
		return result.Err[string](fmt.Errorf("%w: %s as %v", ErrAlphaLoss, c.RGBA(), u))
	}
	return result.Ok(c.ConvertTo(u))
}
