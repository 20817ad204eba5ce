/*
Package picker keeps the color value list of a pixel inspector.

A pixel inspector samples the color under the mouse pointer and shows it in
a small list of units (rgb, hsl and hex by default). One of these units is
the user's preferred format; its value is highlighted and is what gets
copied to the clipboard. Sampling happens on every mouse move, so invalid
input never panics and never returns an error.

Preferences may be read from YAML:

	format: hsl
	formats: [rgb, hsl, hex, nickname]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package picker

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'csscolor.picker'.
func tracer() tracing.Trace {
	return tracing.Select("csscolor.picker")
}
