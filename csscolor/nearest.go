package csscolor

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

func (k keyword) colorful() colorful.Color {
	return colorful.Color{R: float64(k.r) / 255, G: float64(k.g) / 255, B: float64(k.b) / 255}
}

// Nearest finds the keyword closest to c by CIEDE2000 color difference.
// Alpha is ignored. An exact match has distance 0; ties go to the keyword
// which is its nickname. Invalid and transparent colors have no nearest
// keyword and return ("", +Inf).
func (c Color) Nearest() (name string, distance float64) {
	distance = math.Inf(1)
	if !c.IsValid() || c.IsTransparent() {
		return
	}
	target := keyword{r: c.ch.R, g: c.ch.G, b: c.ch.B}.colorful()
	for _, k := range keywords {
		if d := target.DistanceCIEDE2000(k.colorful()); d < distance {
			name, distance = k.name, d
		}
	}
	tracer().Debugf("nearest keyword for %s is %s (ΔE=%.3f)", c.RGB(), name, distance)
	return
}
