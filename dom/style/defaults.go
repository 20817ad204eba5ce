package style

import (
	"image/color"
	"strings"
)

// Initial values of color properties, as defined by CSS. "currentcolor"
// refers to the value of the color property of the same element.
var initialColor = map[string]Property{
	"color":                 "black", // user agents may choose otherwise
	"background-color":      "transparent",
	"border-top-color":      "currentcolor",
	"border-left-color":     "currentcolor",
	"border-right-color":    "currentcolor",
	"border-bottom-color":   "currentcolor",
	"column-rule-color":     "currentcolor",
	"outline-color":         "currentcolor",
	"text-decoration-color": "currentcolor",
	"text-emphasis-color":   "currentcolor",
	"caret-color":           "currentcolor",
	"fill":                  "black",
	"stop-color":            "black",
	"flood-color":           "black",
	"lighting-color":        "white",
}

// inheritedColor lists the color properties which inherit by default.
var inheritedColor = map[string]bool{
	"color":               true,
	"caret-color":         true,
	"fill":                true,
	"text-emphasis-color": true,
}

// InitialColor returns the initial value of a color property, or NullStyle
// for shorthands and properties without a color initial value.
func InitialColor(key string) Property {
	return initialColor[strings.ToLower(key)]
}

// IsInheritedColor is a predicate whether a color property inherits from the
// parent element if not set.
func IsInheritedColor(key string) bool {
	return inheritedColor[strings.ToLower(key)]
}

// ResolveColor interprets the value p of property key as a color, resolving
// the CSS-wide keywords. current is the value of property color of the
// element, parent the value of the property at the parent element. Either
// may be nil if unknown. ResolveColor returns nil if p cannot be resolved.
func ResolveColor(key string, p Property, current, parent color.Color) color.Color {
	switch {
	case p.IsInherit():
		return parent
	case p.IsInitial():
		p = InitialColor(key)
	case p == "unset":
		if IsInheritedColor(key) {
			return parent
		}
		p = InitialColor(key)
	}
	if strings.EqualFold(string(p), "currentcolor") {
		if strings.EqualFold(key, "color") {
			return parent
		}
		return current
	}
	return p.Color()
}
