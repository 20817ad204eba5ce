package style

import (
	"image/color"

	"github.com/npillmayer/csscolor/csscolor"
)

// Color interprets p as a CSS color. It returns nil for the UA default
// "default", for the inheritance values and for any value which is not a
// color.
func (p Property) Color() color.Color {
	if p == "default" || p.IsInitial() || p.IsInherit() {
		return nil
	}
	c := csscolor.New(string(p))
	px, ok := c.ImageColor()
	if !ok {
		tracer().Debugf("style property %q is not a color", p)
		return nil
	}
	return px
}

// CSSColor is Color without the detour over package image/color.
func (p Property) CSSColor() csscolor.Color {
	return csscolor.New(string(p))
}

// ColorString renders c as a CSS value: its keyword if it has one, hex
// otherwise, rgba for translucent colors. nil is the UA default and renders
// as "powderblue".
func ColorString(c color.Color) string {
	if c == nil {
		return "powderblue" // X11 color and CSS color
	}
	cc := csscolor.FromRGBA(c)
	if cc.HasAlpha() {
		return cc.RGBA()
	}
	if name, ok := csscolor.NicknameFor(cc.RGB()); ok {
		return name
	}
	return cc.Hex()
}
