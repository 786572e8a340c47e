/*
Package cssom provides functionality for CSS styling.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
There is not very much open source Go code around for supporting us
in implementing a styling engine, except the great work of
https://godoc.org/github.com/andybalholm/cascadia.
Therefore we will have to compromise
on many features in order to complete this in a realistic time frame.

Selector matching relies on cascadia. CSS handling is de-coupled by
introducing appropriate interfaces StyleSheet and Rule. A concrete
implementation on top of douceur may be found in the sub-package
douceuradapter.

The central operation of this package is computing the effective style
of an element: matched style-sheet rules are applied in encounter order,
then a fixed set of engine-resolved values, then the element's inline
declarations. No selector specificity or origin ranking takes place;
inline style always wins.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'windom.style'.
func tracer() tracing.Trace {
	return tracing.Select("windom.style")
}
