/*
Package csscolor parses textual CSS colors and converts them between units.

Overview

A Color is constructed once from a string, e.g.

	c := csscolor.New("hsla(240, 100%, 50%, 0.3)")

and then rendered in any of the units hex ("#0000FF"), short hex ("#00F"),
nickname ("blue"), rgb, rgba, hsl and hsla. Construction never fails:
input which is not recognized as a color yields a Color with unit
UnitInvalid, and all its renderings are the empty string. Clients probing
many candidate strings (a color picker following the mouse, a scanner
walking a stylesheet) are expected to check IsValid or use Match.

Colors read from an alpha-bearing unit (rgba, hsla, or the keyword
"transparent") are restricted in conversion: ConvertTo will never render them
in a unit without an alpha channel. Strict goes one step further and refuses
such conversions with ErrAlphaLoss.

Colors are immutable and safe for concurrent use. The keyword tables are
package-owned and frozen after initialization.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package csscolor

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'csscolor'.
func tracer() tracing.Trace {
	return tracing.Select("csscolor")
}
