/*
Package cssom provides an abstraction of CSS stylesheets for color scanning.

Status

The interfaces are deliberately small: colors are found and rewritten
per declaration, so a stylesheet is nothing more than a list of rules,
and a rule a list of key/value declarations.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
Stylesheets come from style elements of HTML documents, from style
attributes and from plain CSS files. Parsing is de-coupled by introducing
the interfaces StyleSheet and Rule. A concrete implementation on top of
https://github.com/aymerick/douceur may be found in sub-package
douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'csscolor.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("csscolor.cssom")
}
