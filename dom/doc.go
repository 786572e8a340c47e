/*
Package dom provides the window/document object model.

Overview

A Window is the sole top-level execution scope for one document. It is
constructed by NewWindow from a validated configuration record and
decoded markup text, with tree construction delegated to the HTML
parser of golang.org/x/net.

Every node-like entity comes in two layers: an implementation object
(private mutable state, forming the real tree) and a wrapper object
(the externally visible interface). Wrappers are thin views, keyed by
identity to their implementation object and looked up on demand; there
is exactly one wrapper per implementation object. Externally reachable
mutation goes through the wrapper's coercion-checked entry points,
while internal algorithms mutate implementation objects directly.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'windom.dom'
func tracer() tracing.Trace {
	return tracing.Select("windom.dom")
}
