package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'csscolor.style'.
func tracer() tracing.Trace {
	return tracing.Select("csscolor.style")
}

// Property is a raw value for a CSS property. For example, with
//
//     border-left: 1px solid hsl(120, 100%, 25%)
//
// a property value of "1px solid hsl(120, 100%, 25%)" is set. The main purpose
// of wrapping the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritance-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritance-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks whether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// Symbolic names for groups of properties which may carry a color value.
const (
	PGColor      = "Color"
	PGBackground = "Background"
	PGBorder     = "Border"
	PGOutline    = "Outline"
	PGText       = "Text"
	PGSVG        = "SVG"
	PGX          = "X"
)

// GroupNameFromPropertyKey returns the style property group name for a
// color-carrying style property.
// Example:
//    GroupNameFromPropertyKey("border-top-color") => "Border"
//
// Keys which may not carry a color value will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	if groupname, found := groupNameFromPropertyKey[key]; found {
		return groupname
	}
	if strings.HasSuffix(key, "-color") {
		return PGColor
	}
	return PGX
}

// IsColorProperty is a predicate whether a property value may contain one or
// more colors, either as the sole value (color: red) or as part of a
// shorthand (border: 1px solid red).
func IsColorProperty(key string) bool {
	return GroupNameFromPropertyKey(strings.ToLower(key)) != PGX
}

var groupNameFromPropertyKey = map[string]string{
	"color":                 PGColor,
	"caret-color":           PGColor,
	"accent-color":          PGColor,
	"background":            PGBackground,
	"background-color":      PGBackground,
	"background-image":      PGBackground, // gradients
	"border":                PGBorder,
	"border-top":            PGBorder,
	"border-left":           PGBorder,
	"border-right":          PGBorder,
	"border-bottom":         PGBorder,
	"border-color":          PGBorder,
	"border-top-color":      PGBorder,
	"border-left-color":     PGBorder,
	"border-right-color":    PGBorder,
	"border-bottom-color":   PGBorder,
	"column-rule":           PGBorder,
	"column-rule-color":     PGBorder,
	"outline":               PGOutline,
	"outline-color":         PGOutline,
	"box-shadow":            PGOutline,
	"text-shadow":           PGText,
	"text-decoration":       PGText,
	"text-decoration-color": PGText,
	"text-emphasis-color":   PGText,
	"fill":                  PGSVG,
	"stroke":                PGSVG,
	"stop-color":            PGSVG,
	"flood-color":           PGSVG,
	"lighting-color":        PGSVG,
}
