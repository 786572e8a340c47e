/*
Package css provides resolved values for CSS properties.

CSS properties are plentyful and some of them are complicated.
This package trys to shield clients from the cumbersome handling of
CSS properties resulting of (1) the textual nature of CSS properties
and (2) the complicated semantics of computing style attributes for a
given node.

Dimension-valued properties are parsed into an option type DimenT and
canonicalized; the `display` property is resolved from user-agent
defaults. Resolution is layout-free: percentages and font-relative
units are preserved, not converted.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'windom.style'.
func tracer() tracing.Trace {
	return tracing.Select("windom.style")
}
