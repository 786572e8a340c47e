package windom_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/windom"
	"github.com/npillmayer/windom/dom"
	"github.com/npillmayer/windom/sniff"
)

func TestConstructDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.dom")
	defer teardown()
	m, err := windom.New(sniff.Text("<p>hi</p>"))
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	win := m.Window()
	doc := win.Document()
	if doc.URL() != "about:blank" {
		t.Errorf("default URL should be about:blank, is %q", doc.URL())
	}
	if doc.ContentType() != "text/html" {
		t.Errorf("default content type should be text/html, is %q", doc.ContentType())
	}
	if doc.CharacterSet() != "utf-8" {
		t.Errorf("text input should be labeled utf-8, is %q", doc.CharacterSet())
	}
	if doc.ReadyState() != "complete" {
		t.Errorf("document should be complete after construction, is %q", doc.ReadyState())
	}
	if doc.Referrer() != "" {
		t.Errorf("default referrer should be empty, is %q", doc.Referrer())
	}
	if win.Origin() != "null" {
		t.Errorf("about:blank should yield opaque origin, is %q", win.Origin())
	}
	if win.StorageQuota() != 5_000_000 {
		t.Errorf("default storage quota should be 5000000, is %d", win.StorageQuota())
	}
}

func TestSelfReferentialTopology(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.dom")
	defer teardown()
	m, err := windom.New(sniff.Text("<p>hi</p>"))
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	win := m.Window()
	if win.Self() != win.Top() || win.Top() != win.Parent() {
		t.Errorf("freshly constructed window should satisfy self == top == parent")
	}
	if win.Frames() != win.Self() {
		t.Errorf("window.frames should be window.self")
	}
	if win.Length() != 0 {
		t.Errorf("fresh window should have no subframes, length is %d", win.Length())
	}
	if win.FrameDepth() != 0 {
		t.Errorf("fresh window should have frame depth 0, is %d", win.FrameDepth())
	}
	if win.Document().DefaultView() != win {
		t.Errorf("document's default view should be its window")
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.dom")
	defer teardown()
	m, err := windom.New(sniff.Text("<p>hi</p>"))
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	out := m.Serialize()
	if !strings.Contains(out, "<p>hi</p>") {
		t.Errorf("serialization should contain <p>hi</p>, is %q", out)
	}
}

func TestInvalidContentType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.dom")
	defer teardown()
	m, err := windom.New(sniff.Text("plain"), windom.WithContentType("text/plain"))
	if !errors.Is(err, windom.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
	if m != nil {
		t.Errorf("no window must be returned for invalid content types")
	}
}

func TestLocationsWithStrictMarkupFail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.dom")
	defer teardown()
	_, err := windom.New(sniff.Text("<root/>"),
		windom.WithContentType("application/xml"), windom.WithNodeLocations())
	if !errors.Is(err, windom.ErrInvalidConfiguration) {
		t.Errorf("location tracking with strict markup should fail, got %v", err)
	}
}

func TestNodeLocationUsageError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.dom")
	defer teardown()
	m, err := windom.New(sniff.Text("<p>hi</p>"))
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	body := m.Window().Document().Body()
	if _, err := m.NodeLocation(body); !errors.Is(err, dom.ErrLocationsNotTracked) {
		t.Errorf("expected ErrLocationsNotTracked, got %v", err)
	}
}

func TestNodeLocationTracking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.dom")
	defer teardown()
	markup := "<html><head></head><body>\n<p>hi</p></body></html>"
	m, err := windom.New(sniff.Text(markup), windom.WithNodeLocations())
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	para, err := m.Window().Document().QuerySelector("p")
	if err != nil || para == nil {
		t.Fatalf("cannot find <p>: %v", err)
	}
	loc, err := m.NodeLocation(para)
	if err != nil {
		t.Fatalf("node location failed: %v", err)
	}
	if loc.Offset != strings.Index(markup, "<p>") {
		t.Errorf("expected offset %d for <p>, got %d", strings.Index(markup, "<p>"), loc.Offset)
	}
	if loc.Line != 2 {
		t.Errorf("expected <p> on line 2, got %d", loc.Line)
	}
}

func TestBeforeParseHook(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.dom")
	defer teardown()
	var sawReadyState string
	var sawBody *dom.Node
	hook := func(win *dom.Window) {
		sawReadyState = win.Document().ReadyState()
		sawBody = win.Document().Body()
		win.Set("instrumented", true)
	}
	m, err := windom.New(sniff.Text("<p>hi</p>"), windom.WithBeforeParse(hook))
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	if sawReadyState != "loading" {
		t.Errorf("hook should run before parsing, ready-state was %q", sawReadyState)
	}
	if sawBody != nil {
		t.Errorf("hook should not see a parsed body yet")
	}
	if v, ok := m.Window().Get("instrumented"); !ok || v != true {
		t.Errorf("hook-installed property should survive construction")
	}
}

func TestBeforeParseHookMayQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.dom")
	defer teardown()
	var hookErr error
	var sawNode *dom.Node
	var sawList dom.NodeList
	hook := func(win *dom.Window) {
		doc := win.Document()
		sawNode, hookErr = doc.QuerySelector("p")
		if hookErr == nil {
			sawList, hookErr = doc.QuerySelectorAll("p")
		}
	}
	m, err := windom.New(sniff.Text("<p>hi</p>"), windom.WithBeforeParse(hook))
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	if hookErr != nil {
		t.Errorf("querying the unparsed document should not fail: %v", hookErr)
	}
	if sawNode != nil || sawList.Length() != 0 {
		t.Errorf("the unparsed document should match nothing, got %v / %v", sawNode, sawList)
	}
	para, err := m.Window().Document().QuerySelector("p")
	if err != nil || para == nil {
		t.Errorf("queries after construction should still match: %v", err)
	}
}

func TestFragmentSingletonReuse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.dom")
	defer teardown()
	f1, err := windom.Fragment("<b>bold</b>")
	if err != nil {
		t.Fatalf("fragment parsing failed: %v", err)
	}
	f2, err := windom.Fragment("<i>italic</i>")
	if err != nil {
		t.Fatalf("fragment parsing failed: %v", err)
	}
	if f1.OwnerDocument() != f2.OwnerDocument() {
		t.Errorf("fragments should share the singleton document")
	}
	if f1.FirstChild() == nil || f1.FirstChild().NodeName() != "b" {
		t.Errorf("fragment content not parsed, have %v", f1.FirstChild())
	}
	if f2.FirstChild() == nil || f2.FirstChild().NodeName() != "i" {
		t.Errorf("fragment content not parsed, have %v", f2.FirstChild())
	}
}

func TestInlineStyleWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.dom")
	defer teardown()
	markup := `<html><head><style>p { color: red; }</style></head>
<body><p id="a" style="color: blue">one</p><p id="b">two</p></body></html>`
	m, err := windom.New(sniff.Text(markup))
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	doc := m.Window().Document()
	a := doc.GetElementByID("a")
	if got := a.ComputedStyles().GetPropertyValue("color"); got != "blue" {
		t.Errorf("inline style should win, color is %q", got)
	}
	b := doc.GetElementByID("b")
	if got := b.ComputedStyles().GetPropertyValue("color"); got != "red" {
		t.Errorf("sheet rule should apply, color is %q", got)
	}
}

func TestStrictMarkup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.dom")
	defer teardown()
	m, err := windom.New(sniff.Text("<root><item/></root>"),
		windom.WithContentType("application/xml"))
	if err != nil {
		t.Fatalf("well-formed strict markup should construct: %v", err)
	}
	if m.Window().Document().Mode() != dom.StrictMode {
		t.Errorf("XML content type should select strict parsing mode")
	}
	_, err = windom.New(sniff.Text("<root><item></root>"),
		windom.WithContentType("application/xml"))
	if err == nil {
		t.Errorf("ill-formed strict markup should fail construction")
	}
}

func TestOriginDerivation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.dom")
	defer teardown()
	m, err := windom.New(sniff.Text("<p>hi</p>"), windom.WithURL("https://example.org/page"))
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	if m.Window().Origin() != "https://example.org" {
		t.Errorf("origin should be derived from the document URL, is %q", m.Window().Origin())
	}
}

func TestStubMethods(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.dom")
	defer teardown()
	m, err := windom.New(sniff.Text("<p>hi</p>"))
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	win := m.Window()
	if v, err := win.Call("alert", "boo"); err != nil || v != nil {
		t.Errorf("stub call should be a no-op, got (%v, %v)", v, err)
	}
	if _, err := win.Call("no-such-method"); err == nil {
		t.Errorf("calling an unknown method should fail")
	}
}

func TestWindowsIndependentlyExtensible(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.dom")
	defer teardown()
	m1, err := windom.New(sniff.Text("<p>one</p>"))
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	m2, err := windom.New(sniff.Text("<p>two</p>"))
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	w1, w2 := m1.Window(), m2.Window()
	var called bool
	w1.Set("alert", dom.WindowFunc(func(args ...interface{}) interface{} {
		called = true
		return "custom"
	}))
	if v, err := w1.Call("alert"); err != nil || v != "custom" || !called {
		t.Errorf("overridden method should be callable, got (%v, %v)", v, err)
	}
	if v, err := w2.Call("alert"); err != nil || v != nil {
		t.Errorf("override must not leak into sibling window, got (%v, %v)", v, err)
	}
	w1.Delete("print")
	if _, ok := w1.Get("print"); ok {
		t.Errorf("deleted method should be gone")
	}
	if _, ok := w2.Get("print"); !ok {
		t.Errorf("deletion must not leak into sibling window")
	}
}
