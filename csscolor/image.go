package csscolor

import (
	"fmt"
	"image/color"
	"math"
)

// FromRGBA creates a Color from a sampled pixel. Opaque pixels become rgb
// colors. Other pixels become rgba colors, with alpha rounded to one
// decimal place. A nil color is invalid.
func FromRGBA(c color.Color) Color {
	if c == nil {
		return Color{}
	}
	px := color.NRGBAModel.Convert(c).(color.NRGBA)
	if px.A == 0xff {
		return New(fmt.Sprintf("rgb(%d,%d,%d)", px.R, px.G, px.B))
	}
	a := math.Round(float64(px.A)/255*10) / 10
	return New(fmt.Sprintf("rgba(%d,%d,%d,%s)", px.R, px.G, px.B, formatNumber(a)))
}

// ImageColor converts to a non-premultiplied image color. ok is false for
// invalid colors. "transparent" is fully transparent black.
func (c Color) ImageColor() (px color.NRGBA, ok bool) {
	if !c.IsValid() {
		return color.NRGBA{}, false
	}
	return color.NRGBA{
		R: c.ch.R,
		G: c.ch.G,
		B: c.ch.B,
		A: uint8(math.Round(c.ch.A * 255)),
	}, true
}
