package style

import (
	"sort"

	"golang.org/x/net/html"
)

// Values "default" have the following semantics:
// Treat this as an inherent UA default, which should not be instantiated in
// memory, but rather will be treated implicitely by rendering code.
var nonInherited = map[string]string{
	"position":            "static",
	"background-color":    "default",
	"border-top-color":    "default",
	"border-left-color":   "default",
	"border-right-color":  "default",
	"border-bottom-color": "default",
}

var isDimension = map[string]string{
	"width":                "auto",
	"height":               "auto",
	"min-width":            "none",
	"min-height":           "none",
	"max-width":            "none",
	"max-height":           "none",
	"top":                  "0",
	"right":                "0",
	"bottom":               "0",
	"left":                 "0",
	"margin-top":           "0",
	"margin-left":          "0",
	"margin-right":         "0",
	"margin-bottom":        "0",
	"padding-top":          "0",
	"padding-left":         "0",
	"padding-right":        "0",
	"padding-bottom":       "0",
	"border-top-width":     "medium",
	"border-left-width":    "medium",
	"border-right-width":   "medium",
	"border-bottom-width":  "medium",
}

// IsDimensionProperty tells if a property key denotes a dimension-valued
// property (widths, offsets, margins, paddings).
func IsDimensionProperty(key string) bool {
	_, ok := isDimension[key]
	return ok
}

// DimensionProperties returns the keys of all dimension-valued properties,
// sorted alphabetically.
func DimensionProperties() []string {
	keys := make([]string, 0, len(isDimension))
	for k := range isDimension {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// UserAgentDefaultProperty returns the user-agent default property for a
// given key, or NullStyle if the user agent does not provide one.
func UserAgentDefaultProperty(node *html.Node, key string) Property {
	switch key {
	case "display":
		return DisplayPropertyForHTMLNode(node)
	default:
		if dim, ok := isDimension[key]; ok {
			return Property(dim)
		}
		if p, ok := nonInherited[key]; ok {
			return Property(p)
		}
	}
	return NullStyle
}

// DisplayPropertyForHTMLNode returns the default `display` CSS property
// for an HTML node.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	switch node.Data {
	case "head", "style", "script", "meta", "link", "title":
		return "none"
	case "html", "article", "aside", "body", "div", "h1", "h2", "h3",
		"h4", "h5", "h6", "ol", "p", "section", "ul", "li":
		return "block"
	case "i", "b", "em", "span", "strong", "a", "code":
		return "inline"
	}
	tracer().Infof("unknown HTML element %s/%d will be set to display: block",
		node.Data, node.Type)
	return "block"
}
