package csscolor

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Grammars are matched against the whole input after all whitespace has
// been removed. Number ranges are part of the grammar: an rgb channel of
// 256 does not match, it is never clamped.
const (
	hexDigit  = `[0-9A-Fa-f]`
	byteValue = `(\d\d?|[01]\d\d|2[0-4]\d|25[0-5])`
	hue       = `(\d+(?:\.\d+)?)`
	percent   = `(100(?:\.0*)?|\d{1,2}(?:\.\d+)?)%`
	alpha     = `(1(?:\.0+)?|0(?:\.\d+)?)`
)

var (
	longHexPattern  = regexp.MustCompile(`^#(` + hexDigit + `{2})(` + hexDigit + `{2})(` + hexDigit + `{2})$`)
	shortHexPattern = regexp.MustCompile(`^#(` + hexDigit + `)(` + hexDigit + `)(` + hexDigit + `)$`)
	hslPattern      = regexp.MustCompile(`^hsl\(` + hue + `,` + percent + `,` + percent + `\)$`)
	hslaPattern     = regexp.MustCompile(`^hsla\(` + hue + `,` + percent + `,` + percent + `,` + alpha + `\)$`)
	rgbPattern      = regexp.MustCompile(`^rgb\(` + byteValue + `,` + byteValue + `,` + byteValue + `\)$`)
	rgbaPattern     = regexp.MustCompile(`^rgba\(` + byteValue + `,` + byteValue + `,` + byteValue + `,` + alpha + `\)$`)
)

// grammar recognizes one unit. parse is only called with whitespace-free input.
type grammar struct {
	unit  Unit
	parse func(string) (Channels, bool)
}

// grammars in order of precedence; the first match wins.
var grammars = [...]grammar{
	{UnitHex, parseLongHex},
	{UnitShortHex, parseShortHex},
	{UnitHSL, parseHSL},
	{UnitNickname, parseKeyword},
	{UnitRGB, parseRGB},
	{UnitHSLA, parseHSLA},
	{UnitRGBA, parseRGBA},
	{UnitNickname, parseTransparent},
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func parseLongHex(s string) (Channels, bool) {
	m := longHexPattern.FindStringSubmatch(s)
	if m == nil {
		return Channels{}, false
	}
	return Channels{R: hexByte(m[1]), G: hexByte(m[2]), B: hexByte(m[3]), A: 1}, true
}

func parseShortHex(s string) (Channels, bool) {
	m := shortHexPattern.FindStringSubmatch(s)
	if m == nil {
		return Channels{}, false
	}
	return Channels{
		R: hexByte(m[1] + m[1]),
		G: hexByte(m[2] + m[2]),
		B: hexByte(m[3] + m[3]),
		A: 1,
	}, true
}

func parseHSL(s string) (Channels, bool) {
	m := hslPattern.FindStringSubmatch(s)
	if m == nil {
		return Channels{}, false
	}
	r, g, b := hslToRGB(number(m[1]), number(m[2])/100, number(m[3])/100)
	return Channels{R: r, G: g, B: b, A: 1}, true
}

func parseHSLA(s string) (Channels, bool) {
	m := hslaPattern.FindStringSubmatch(s)
	if m == nil {
		return Channels{}, false
	}
	r, g, b := hslToRGB(number(m[1]), number(m[2])/100, number(m[3])/100)
	return Channels{R: r, G: g, B: b, A: number(m[4])}, true
}

func parseRGB(s string) (Channels, bool) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return Channels{}, false
	}
	return Channels{R: decByte(m[1]), G: decByte(m[2]), B: decByte(m[3]), A: 1}, true
}

func parseRGBA(s string) (Channels, bool) {
	m := rgbaPattern.FindStringSubmatch(s)
	if m == nil {
		return Channels{}, false
	}
	return Channels{R: decByte(m[1]), G: decByte(m[2]), B: decByte(m[3]), A: number(m[4])}, true
}

// parseKeyword is case-sensitive: "Red" is not a color.
func parseKeyword(s string) (Channels, bool) {
	if s == transparentKeyword {
		return Channels{}, false
	}
	e, ok := byKeyword[s]
	if !ok {
		return Channels{}, false
	}
	return Channels{R: e.r, G: e.g, B: e.b, A: 1}, true
}

func parseTransparent(s string) (Channels, bool) {
	return Channels{}, s == transparentKeyword
}

// The helpers below are only called on submatches the grammar has already
// restricted, so conversion errors cannot occur.

func hexByte(s string) uint8 {
	n, _ := strconv.ParseUint(s, 16, 8)
	return uint8(n)
}

func decByte(s string) uint8 {
	n, _ := strconv.ParseUint(s, 10, 8)
	return uint8(n)
}

func number(s string) float64 {
	x, _ := strconv.ParseFloat(s, 64)
	return x
}
