package css

import (
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/npillmayer/windom/dom/style"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0100
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.DU
	pcnt  percent.Percent
	ratio int
	flags uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
*/

// Auto creates a CSS dimension of value `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a CSS dimension of value `inherit`.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a CSS dimension of value `initial`.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n int) DimenT {
	return DimenT{pcnt: percent.FromInt(n), ratio: n, flags: dimenPercent}
}

// IsNone tells if a dimension is unset.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// IsAbsolute tells if a dimension carries a fixed value.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// DU returns the fixed value of an absolute dimension, in dimension units.
func (d DimenT) DU() dimen.DU {
	return d.d
}

// Percent returns the percentage of a %-relative dimension.
func (d DimenT) Percent() percent.Percent {
	return d.pcnt
}

// String returns the canonical textual form of a dimension, e.g. "12pt",
// "50%", "auto".
func (d DimenT) String() string {
	switch {
	case d.flags&kindMask == dimenAuto:
		return "auto"
	case d.flags&kindMask == dimenInherit:
		return "inherit"
	case d.flags&kindMask == dimenInitial:
		return "initial"
	case d.flags&dimenPercent > 0:
		return strconv.Itoa(d.ratio) + "%"
	case d.flags&kindMask == dimenAbsolute:
		pts := float64(d.d) / float64(dimen.PT)
		return strconv.FormatFloat(pts, 'f', -1, 64) + "pt"
	}
	return ""
}

// ParseDimen parses a textual CSS dimension value into an option type.
// Returns false for values it cannot interpret, including font- and
// viewport-relative units, which are deliberately left unresolved.
//
// Unitless numbers and px-values are converted to points with the CSS
// reference ratio 1px = 0.75pt.
func ParseDimen(p style.Property) (DimenT, bool) {
	v := strings.ToLower(strings.TrimSpace(p.String()))
	switch v {
	case "":
		return DimenT{}, false
	case "auto":
		return Auto(), true
	case "inherit":
		return Inherit(), true
	case "initial":
		return Initial(), true
	}
	if strings.HasSuffix(v, "%") {
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(v, "%")))
		if err != nil {
			return DimenT{}, false
		}
		return Percentage(n), true
	}
	num, unit := v, ""
	for _, u := range []string{"pt", "px"} {
		if strings.HasSuffix(v, u) {
			unit, num = u, strings.TrimSpace(strings.TrimSuffix(v, u))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return DimenT{}, false
	}
	switch unit {
	case "pt":
		return JustDimen(dimen.DU(f * float64(dimen.PT))), true
	case "px", "": // CSS reference pixel: 96px = 72pt
		return JustDimen(dimen.DU(f * 0.75 * float64(dimen.PT))), true
	}
	return DimenT{}, false
}
