package dom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/npillmayer/windom/dom/style/cssom"
	"github.com/npillmayer/windom/dom/style/cssom/douceuradapter"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrLocationsNotTracked is thrown if a node location is requested from a
// document constructed without location tracking.
var ErrLocationsNotTracked = errors.New("node locations were not tracked during parsing")

// ErrNoLocationRecorded is thrown for nodes without a recorded source
// location (e.g., nodes created after parsing).
var ErrNoLocationRecorded = errors.New("no source location recorded for node")

// documentImpl is the implementation object of a document: the real
// tree plus all private document state. It is owned exclusively by its
// window and mutated directly by internal algorithms.
type documentImpl struct {
	root             *html.Node // tree constructed by the parser collaborator
	window           *Window    // defaultView back-reference
	mode             ParseMode
	contentType      string
	encoding         string
	baseURL          *url.URL
	referrer         string
	lastModified     time.Time
	cookies          http.CookieJar
	includeLocations bool // immutable after creation
	scripting        bool
	readyState       string
	sheets           []cssom.StyleSheet
	wrappers         map[*html.Node]*Node
	locations        map[*html.Node]SourceLocation
}

// Document is the wrapper object for a document. A document belongs to
// exactly one window for its lifetime.
type Document struct {
	impl *documentImpl
}

// newDocument is the document-specific construction path. There is no
// generic fallback: every document is created here, bound to its
// window.
func newDocument(cfg Config, encoding string, win *Window) *Document {
	impl := &documentImpl{
		window:           win,
		mode:             cfg.Mode,
		contentType:      cfg.ContentType.Essence,
		encoding:         encoding,
		baseURL:          cfg.BaseURL,
		referrer:         cfg.Referrer,
		lastModified:     time.Now(),
		cookies:          cfg.Cookies,
		includeLocations: cfg.IncludeLocations,
		scripting:        cfg.Scripting,
		readyState:       "loading",
		wrappers:         make(map[*html.Node]*Node),
	}
	return &Document{impl: impl}
}

// wrapperFor returns the unique wrapper object for an implementation
// node, creating it on first lookup.
func (d *Document) wrapperFor(n *html.Node) *Node {
	if n == nil {
		return nil
	}
	if w, ok := d.impl.wrappers[n]; ok {
		return w
	}
	w := &Node{doc: d, impl: n}
	d.impl.wrappers[n] = w
	return w
}

// DefaultView returns the window owning this document.
func (d *Document) DefaultView() *Window {
	return d.impl.window
}

// ContentType returns the document's media type essence, e.g. "text/html".
func (d *Document) ContentType() string {
	return d.impl.contentType
}

// CharacterSet returns the label of the encoding the markup input was
// decoded with.
func (d *Document) CharacterSet() string {
	return d.impl.encoding
}

// URL returns the document's base URL.
func (d *Document) URL() string {
	if d.impl.baseURL == nil {
		return ""
	}
	return d.impl.baseURL.String()
}

// Referrer returns the referrer URL the document was constructed with,
// or "".
func (d *Document) Referrer() string {
	return d.impl.referrer
}

// LastModified returns the document's last-modified timestamp.
func (d *Document) LastModified() time.Time {
	return d.impl.lastModified
}

// ReadyState is "loading" until the document has been closed, then
// "complete".
func (d *Document) ReadyState() string {
	return d.impl.readyState
}

// Mode returns the parsing discipline the document was parsed with.
func (d *Document) Mode() ParseMode {
	return d.impl.mode
}

// CookieJar returns the document's cookie store.
func (d *Document) CookieJar() http.CookieJar {
	return d.impl.cookies
}

// DocumentNode returns the wrapper for the root of the tree.
func (d *Document) DocumentNode() *Node {
	return d.wrapperFor(d.impl.root)
}

// DocumentElement returns the top-level element of the document
// (<html> for HTML documents).
func (d *Document) DocumentElement() *Node {
	if d.impl.root == nil { // document not yet parsed
		return nil
	}
	for ch := d.impl.root.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			return d.wrapperFor(ch)
		}
	}
	return nil
}

// Body returns the document's <body> element, if present.
func (d *Document) Body() *Node {
	return d.wrapperFor(findElement(atom.Body, d.impl.root))
}

// Head returns the document's <head> element, if present.
func (d *Document) Head() *Node {
	return d.wrapperFor(findElement(atom.Head, d.impl.root))
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}

// QuerySelector returns the first element of the document matching a
// CSS selector, or nil. An unparsed document (as observed by the
// pre-parse hook) matches nothing.
func (d *Document) QuerySelector(selector string) (*Node, error) {
	if d.impl.root == nil {
		return nil, nil
	}
	return d.DocumentNode().QuerySelector(selector)
}

// QuerySelectorAll returns all elements of the document matching a CSS
// selector, in document order. An unparsed document matches nothing.
func (d *Document) QuerySelectorAll(selector string) (NodeList, error) {
	if d.impl.root == nil {
		return nil, nil
	}
	return d.DocumentNode().QuerySelectorAll(selector)
}

// GetElementByID returns the element carrying the given id attribute,
// or nil.
func (d *Document) GetElementByID(id string) *Node {
	if d.impl.root == nil {
		return nil
	}
	var find func(*html.Node) *html.Node
	find = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "id" && a.Val == id {
					return n
				}
			}
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if r := find(ch); r != nil {
				return r
			}
		}
		return nil
	}
	return d.wrapperFor(find(d.impl.root))
}

// CreateElement creates a detached element node owned by this
// document. The name is coerced into a string and validated.
func (d *Document) CreateElement(name interface{}) (*Node, error) {
	tag := strings.ToLower(strings.TrimSpace(DOMString(name)))
	if !validTagName(tag) {
		return nil, fmt.Errorf("invalid element name %q", tag)
	}
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	return d.wrapperFor(n), nil
}

func validTagName(tag string) bool {
	if tag == "" {
		return false
	}
	for i, r := range tag {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9' && i > 0:
		case r == '-' && i > 0:
		default:
			return false
		}
	}
	return true
}

// StyleSheets returns the style sheets collected from the document, in
// document order.
func (d *Document) StyleSheets() []cssom.StyleSheet {
	return d.impl.sheets
}

// AddStyleSheet appends a style sheet to the document. Its rules rank
// after all previously present sheets.
func (d *Document) AddStyleSheet(sheet cssom.StyleSheet) {
	if sheet != nil {
		d.impl.sheets = append(d.impl.sheets, sheet)
	}
}

// Serialize renders the current document state back to markup text.
// The tree is always renderable by construction; a render problem is
// traced and yields the portion rendered so far.
func (d *Document) Serialize() string {
	if d.impl.root == nil {
		return ""
	}
	var sb strings.Builder
	if err := html.Render(&sb, d.impl.root); err != nil {
		tracer().Errorf("document serialization: %v", err)
	}
	return sb.String()
}

// --- Parsing and finalization ----------------------------------------------

// parseMarkup hands the decoded markup text over to the external parser
// collaborator, which populates the implementation tree. Parsing is
// fully synchronous. In strict mode, input must be well-formed.
func (d *Document) parseMarkup(markup string) error {
	if d.impl.mode == StrictMode {
		if err := checkWellFormed(markup); err != nil {
			return fmt.Errorf("strict markup input is not well-formed: %w", err)
		}
	}
	root, err := html.ParseWithOptions(strings.NewReader(markup),
		html.ParseOptionEnableScripting(d.impl.scripting))
	if err != nil {
		return fmt.Errorf("cannot parse markup: %w", err)
	}
	d.impl.root = root
	return nil
}

func checkWellFormed(markup string) error {
	dec := xml.NewDecoder(strings.NewReader(markup))
	dec.Strict = true
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// close finalizes the document after parsing: embedded style sheets are
// collected, the location index is frozen, and the ready-state flips to
// "complete". No markup may be fed into a closed document.
func (d *Document) close(markup string) {
	for _, sheet := range douceuradapter.ExtractStyleElements(d.impl.root) {
		d.impl.sheets = append(d.impl.sheets, sheet)
	}
	if d.impl.includeLocations {
		d.impl.locations = buildLocationIndex(markup, d.impl.root)
	}
	d.impl.readyState = "complete"
	tracer().Debugf("document closed, %d style sheet(s)", len(d.impl.sheets))
}

// locationOf answers node location queries; see Node.Location.
func (d *Document) locationOf(n *Node) (SourceLocation, error) {
	if !d.impl.includeLocations {
		return SourceLocation{}, ErrLocationsNotTracked
	}
	loc, ok := d.impl.locations[n.impl]
	if !ok {
		return SourceLocation{}, ErrNoLocationRecorded
	}
	return loc, nil
}
