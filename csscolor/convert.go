package csscolor

import (
	"math"
	"strconv"
)

// hslToRGB converts hue (degrees), saturation and lightness (both in [0,1])
// to 8-bit channels. Channels are truncated, not rounded: hsl(0, 0%, 50%)
// is rgb(127, 127, 127).
//
// Hues of 360° and above are reduced modulo 360 before the sector lookup.
func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	c := (1 - math.Abs(2*l-1)) * s
	sector := h / 60
	x := c * (1 - math.Abs(math.Mod(sector, 2)-1))
	var r, g, b float64
	switch {
	case sector < 1:
		r, g, b = c, x, 0
	case sector < 2:
		r, g, b = x, c, 0
	case sector < 3:
		r, g, b = 0, c, x
	case sector < 4:
		r, g, b = 0, x, c
	case sector < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	return truncChannel(r + m), truncChannel(g + m), truncChannel(b + m)
}

func truncChannel(v float64) uint8 {
	n := int(v * 255)
	if n < 0 {
		return 0
	} else if n > 255 {
		return 255
	}
	return uint8(n)
}

// rgbToHSL returns hue in [0,360) rounded to 3 decimals, and saturation
// and lightness as whole percentages.
func rgbToHSL(r8, g8, b8 uint8) (h float64, s, l int) {
	r, g, b := float64(r8)/255, float64(g8)/255, float64(b8)/255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	light := (max + min) / 2
	var sat float64
	if max != min {
		d := max - min
		if light > 0.5 {
			sat = d / (2 - max - min)
		} else {
			sat = d / (max + min)
		}
		switch max {
		case r:
			h = math.Mod((g-b)/d, 6)
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h *= 60
		if h < 0 {
			h += 360
		}
	}
	h = math.Round(h*1000) / 1000
	if h >= 360 {
		h -= 360
	}
	return h, int(math.Round(sat * 100)), int(math.Round(light * 100))
}

// formatNumber prints the shortest representation, e.g. "0.5", "1", "206.897".
func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
