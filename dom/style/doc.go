/*
Package style holds the basic value types for CSS styling.

A computed style is a plain mapping from property keys to resolved
string values. Values are wrapped into type Property to provide a
set of convenient helpers.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'windom.style'
func tracer() tracing.Trace {
	return tracing.Select("windom.style")
}
