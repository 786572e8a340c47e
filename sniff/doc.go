/*
Package sniff normalizes heterogeneous markup input into decoded text.

Callers may hand over markup as a string, as a byte buffer, or as a
streamed view over bytes. For byte input the character encoding is
detected according to WHATWG rules: a leading byte-order mark wins,
then a transport-supplied charset label, then an in-document meta
hint scanned from a bounded prefix, and finally a default depending
on the content type (UTF-8 for strict markup, windows-1252 for
lenient markup). Detection always terminates with a usable encoding.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sniff

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'windom.sniff'.
func tracer() tracing.Trace {
	return tracing.Select("windom.sniff")
}
