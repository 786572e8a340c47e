package css

import (
	"sort"

	"github.com/npillmayer/windom/dom/style"
	"golang.org/x/net/html"
)

// resolvedKeys is the fixed set of properties the engine computes
// resolved values for: `display` plus all dimension-valued properties.
var resolvedKeys []string

func init() {
	resolvedKeys = append(resolvedKeys, "display")
	resolvedKeys = append(resolvedKeys, style.DimensionProperties()...)
	sort.Strings(resolvedKeys)
}

// ResolvedProperties returns the fixed set of property keys for which
// the engine computes resolved values.
func ResolvedProperties() []string {
	return resolvedKeys
}

// Resolve computes the engine-resolved value of a property on an element.
// Dimension-valued properties are canonicalized through DimenT; the
// `display` property falls back to the user-agent default when no rule
// declared it. Properties outside the resolved set, and values the
// dimension parser does not interpret, yield NullStyle and are left
// untouched by the cascade.
func Resolve(node *html.Node, key string, computed *style.PropertyMap) style.Property {
	if key == "display" {
		if v, ok := computed.Property("display"); ok && !v.IsEmpty() {
			return v
		}
		return style.DisplayPropertyForHTMLNode(node)
	}
	if !style.IsDimensionProperty(key) {
		return style.NullStyle
	}
	v, ok := computed.Property(key)
	if !ok || v.IsEmpty() {
		return style.NullStyle
	}
	d, ok := ParseDimen(v)
	if !ok {
		tracer().Debugf("leaving dimension value %q of %s unresolved", v, key)
		return style.NullStyle
	}
	return style.Property(d.String())
}
