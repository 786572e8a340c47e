package cssom

import (
	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/windom/dom/style"
	"github.com/npillmayer/windom/dom/style/css"
	"golang.org/x/net/html"
)

// ComputedStyles answers the question "what is the effective value of
// CSS property P on element E". Three sources are merged, in precedence
// order from lowest to highest:
//
//  1. every style-sheet rule whose selector matches the element, in
//     rule encounter order;
//  2. engine-resolved values for a fixed set of properties (see
//     css.ResolvedProperties);
//  3. the element's inline style declarations.
//
// The result is rebuilt fully on each call; there is no caching and no
// incremental invalidation. An element with no matching rules and no
// inline style yields an empty property map.
func ComputedStyles(sheets []StyleSheet, element *html.Node) *style.PropertyMap {
	pmap := style.NewPropertyMap()
	if element == nil || element.Type != html.ElementNode {
		return pmap
	}
	for _, sheet := range sheets {
		if sheet == nil || sheet.Empty() {
			continue
		}
		for _, rule := range sheet.Rules() {
			sel, err := cascadia.Compile(rule.Selector())
			if err != nil {
				tracer().Infof("skipping unparsable selector %q", rule.Selector())
				continue
			}
			if !sel.Match(element) {
				continue
			}
			for _, key := range rule.Properties() {
				for _, kv := range style.SplitCompoundProperty(key, rule.Value(key)) {
					pmap.Set(kv.Key, kv.Value)
				}
			}
		}
	}
	for _, key := range css.ResolvedProperties() {
		if v := css.Resolve(element, key, pmap); !v.IsEmpty() {
			pmap.Set(key, v)
		}
	}
	for _, kv := range InlineDeclarations(attrValue(element, "style")) {
		pmap.Set(kv.Key, kv.Value)
	}
	return pmap
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key && a.Namespace == "" {
			return a.Val
		}
	}
	return ""
}
