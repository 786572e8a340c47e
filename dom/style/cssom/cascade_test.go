package cssom_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/windom/dom/style"
	"github.com/npillmayer/windom/dom/style/cssom"
	"github.com/npillmayer/windom/dom/style/cssom/douceuradapter"
	"golang.org/x/net/html"
)

func parseHTML(t *testing.T, markup string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("cannot parse test markup: %v", err)
	}
	return root
}

func findTag(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findTag(ch, tag); r != nil {
			return r
		}
	}
	return nil
}

func mustSheet(t *testing.T, csstext string) cssom.StyleSheet {
	t.Helper()
	sheet, err := douceuradapter.Parse(csstext)
	if err != nil {
		t.Fatalf("cannot parse test CSS: %v", err)
	}
	return sheet
}

func TestMatchedRulesApply(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.style")
	defer teardown()
	root := parseHTML(t, "<body><p>hi</p></body>")
	sheet := mustSheet(t, "p { color: red; margin: 10pt 20pt }")
	pmap := cssom.ComputedStyles([]cssom.StyleSheet{sheet}, findTag(root, "p"))
	if got := pmap.GetPropertyValue("color"); got != "red" {
		t.Errorf("color should be red, is %q", got)
	}
	if got := pmap.GetPropertyValue("margin-top"); got != "10pt" {
		t.Errorf("compound margin should split, margin-top is %q", got)
	}
	if got := pmap.GetPropertyValue("margin-right"); got != "20pt" {
		t.Errorf("compound margin should split, margin-right is %q", got)
	}
	if got := pmap.GetPropertyValue("margin-bottom"); got != "10pt" {
		t.Errorf("compound margin should split, margin-bottom is %q", got)
	}
}

func TestLaterRuleWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.style")
	defer teardown()
	root := parseHTML(t, "<body><p>hi</p></body>")
	sheet := mustSheet(t, "p { color: red } p { color: green }")
	pmap := cssom.ComputedStyles([]cssom.StyleSheet{sheet}, findTag(root, "p"))
	if got := pmap.GetPropertyValue("color"); got != "green" {
		t.Errorf("later rule should win, color is %q", got)
	}
}

func TestLaterSheetWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.style")
	defer teardown()
	root := parseHTML(t, "<body><p>hi</p></body>")
	first := mustSheet(t, "p { color: red }")
	second := mustSheet(t, "p { color: green }")
	pmap := cssom.ComputedStyles([]cssom.StyleSheet{first, second}, findTag(root, "p"))
	if got := pmap.GetPropertyValue("color"); got != "green" {
		t.Errorf("later sheet should win, color is %q", got)
	}
}

func TestInlineDominates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.style")
	defer teardown()
	root := parseHTML(t, `<body><p style="color: blue">hi</p></body>`)
	sheet := mustSheet(t, "p { color: red }")
	pmap := cssom.ComputedStyles([]cssom.StyleSheet{sheet}, findTag(root, "p"))
	if got := pmap.GetPropertyValue("color"); got != "blue" {
		t.Errorf("inline declaration should dominate, color is %q", got)
	}
}

func TestResolvedValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.style")
	defer teardown()
	root := parseHTML(t, "<body><p>hi</p></body>")
	sheet := mustSheet(t, "p { width: 16px }")
	pmap := cssom.ComputedStyles([]cssom.StyleSheet{sheet}, findTag(root, "p"))
	if got := pmap.GetPropertyValue("width"); got != "12pt" {
		t.Errorf("px widths should canonicalize to points, is %q", got)
	}
	if got := pmap.GetPropertyValue("display"); got != "block" {
		t.Errorf("display should resolve to the UA default, is %q", got)
	}
}

func TestNonElementsYieldEmptyMaps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.style")
	defer teardown()
	root := parseHTML(t, "<body><p>hi</p></body>")
	text := findTag(root, "p").FirstChild
	if pmap := cssom.ComputedStyles(nil, text); pmap.Size() != 0 {
		t.Errorf("text nodes should yield empty maps, have %d entries", pmap.Size())
	}
	if pmap := cssom.ComputedStyles(nil, nil); pmap.Size() != 0 {
		t.Errorf("nil nodes should yield empty maps")
	}
}

func TestUnparsableSelectorSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.style")
	defer teardown()
	root := parseHTML(t, "<body><p>hi</p></body>")
	sheet := mustSheet(t, "p..bad { color: red } p { color: green }")
	pmap := cssom.ComputedStyles([]cssom.StyleSheet{sheet}, findTag(root, "p"))
	if got := pmap.GetPropertyValue("color"); got != "green" {
		t.Errorf("unparsable selectors should be skipped, color is %q", got)
	}
}

func TestAtRuleContributesNestedRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.style")
	defer teardown()
	root := parseHTML(t, "<body><p>hi</p></body>")
	sheet := mustSheet(t, "@media screen { p { color: red } }")
	pmap := cssom.ComputedStyles([]cssom.StyleSheet{sheet}, findTag(root, "p"))
	if got := pmap.GetPropertyValue("color"); got != "red" {
		t.Errorf("nested qualified rules should apply, color is %q", got)
	}
}

func TestInlineDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.style")
	defer teardown()
	decls := cssom.InlineDeclarations("color: blue; margin: 1pt")
	want := map[string]style.Property{
		"color":         "blue",
		"margin-top":    "1pt",
		"margin-right":  "1pt",
		"margin-bottom": "1pt",
		"margin-left":   "1pt",
	}
	if len(decls) != len(want) {
		t.Fatalf("expected %d declarations, have %d: %v", len(want), len(decls), decls)
	}
	for _, kv := range decls {
		if want[kv.Key] != kv.Value {
			t.Errorf("%s should be %q, is %q", kv.Key, want[kv.Key], kv.Value)
		}
	}
}

func TestInlineDeclarationsImportantStripped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.style")
	defer teardown()
	decls := cssom.InlineDeclarations("color: blue !important")
	if len(decls) != 1 || decls[0].Key != "color" || decls[0].Value != "blue" {
		t.Errorf("important marker should be stripped, got %v", decls)
	}
	if decls := cssom.InlineDeclarations("   "); decls != nil {
		t.Errorf("blank attribute should yield no declarations, got %v", decls)
	}
}
