/*
Package windom builds an in-memory document environment — a global
execution context (a "window") paired with a structured document — from
raw markup input, and exposes a spec-shaped object model over it.

Overview

Construction runs through a fixed pipeline: heterogeneous input (text,
byte buffers, byte streams) is normalized into decoded markup text via
encoding detection (package sniff), a configuration surface is
validated and defaulted, the dual-layer object model is constructed
(package dom), the external HTML parser populates the document, and
the document is finalized. On demand, the style cascade (packages
dom/style/…) answers computed-style queries over the built model.

Reproducing full layout or rendering is a non-goal: only computed
style values are resolved, not geometry or paint.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package windom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'windom.windom'
func tracer() tracing.Trace {
	return tracing.Select("windom.windom")
}
