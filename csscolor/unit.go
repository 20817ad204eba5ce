package csscolor

import "fmt"

// Unit is a textual representation of a CSS color.
//
// The zero value is UnitInvalid, so that a zero Color is not a color.
type Unit int8

// Color units. Apart from UnitInvalid these are the units a color may be read
// from and rendered in.
const (
	UnitInvalid  Unit = iota // not a color
	UnitHex                  // #RRGGBB
	UnitShortHex             // #RGB
	UnitNickname             // CSS color keyword, e.g. "red"
	UnitRGB                  // rgb(r, g, b)
	UnitRGBA                 // rgba(r, g, b, a)
	UnitHSL                  // hsl(h, s%, l%)
	UnitHSLA                 // hsla(h, s%, l%, a)
)

var unitNames = [...]string{
	UnitInvalid:  "invalid",
	UnitHex:      "hex",
	UnitShortHex: "shortHex",
	UnitNickname: "nickname",
	UnitRGB:      "rgb",
	UnitRGBA:     "rgba",
	UnitHSL:      "hsl",
	UnitHSLA:     "hsla",
}

func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// IsValid is false for UnitInvalid and for values outside the enumeration.
func (u Unit) IsValid() bool {
	return u > UnitInvalid && int(u) < len(unitNames)
}

// HasAlpha is true for the alpha-bearing units rgba and hsla.
func (u Unit) HasAlpha() bool {
	return u == UnitRGBA || u == UnitHSLA
}

// ParseUnit looks up a unit by name, e.g. "shortHex". These names are used
// for format preferences. "invalid" is not accepted.
func ParseUnit(name string) (Unit, bool) {
	for u, n := range unitNames {
		if Unit(u) != UnitInvalid && n == name {
			return Unit(u), true
		}
	}
	return UnitInvalid, false
}

// Units returns all valid units in enumeration order.
func Units() []Unit {
	return []Unit{UnitHex, UnitShortHex, UnitNickname, UnitRGB, UnitRGBA, UnitHSL, UnitHSLA}
}
