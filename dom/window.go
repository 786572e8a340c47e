package dom

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/npillmayer/windom/dom/style"
	"github.com/npillmayer/windom/sniff"
)

// ErrOriginReplaced is thrown when a window's origin is replaced a
// second time.
var ErrOriginReplaced = errors.New("window origin has already been replaced")

// ErrAlreadyEmbedded is thrown when a window is embedded into a frame
// topology a second time.
var ErrAlreadyEmbedded = errors.New("window has already been embedded")

// windowImpl is the implementation object of a window: the private
// mutable state behind the Window wrapper.
type windowImpl struct {
	document       *Document
	origin         string
	originReplaced bool
	parent         *Window // owner-assigned; default self
	top            *Window // owner-assigned; default self
	embedded       bool
	frameDepth     int
	selection      *Selection
	customElements *CustomElementRegistry
	properties     map[string]interface{} // per-instance interface surface
	geometry       Geometry
	visual         bool
	storageQuota   int64
}

// Window is the wrapper object for a global execution context. It owns
// exactly one document. Freshly created windows are their own parent
// and top; multi-frame topology is established by external
// frame-embedding logic via Embed, not by this package.
type Window struct {
	impl *windowImpl
}

// Geometry holds the fixed default geometry and scroll attributes of a
// window. This core performs no layout; the values are never updated.
type Geometry struct {
	InnerWidth       int
	InnerHeight      int
	ScreenX, ScreenY int
	ScrollX, ScrollY int
	DevicePixelRatio float64
}

var defaultGeometry = Geometry{
	InnerWidth:       1024,
	InnerHeight:      768,
	DevicePixelRatio: 1,
}

// WindowFunc is the signature of methods held in a window's
// per-instance property table.
type WindowFunc func(args ...interface{}) interface{}

// NewWindow constructs a fully wired window with its document from a
// validated configuration record and decoded markup. Construction is
// all-or-nothing: an error in any step aborts before the window is
// returned, and no partially-usable window is ever observable.
//
// The steps run in dependency order: window allocation with its
// per-instance interface table, document allocation, origin
// derivation, self-referential frame topology, selection and
// custom-element registry, stub installation, the pre-parse hook, the
// synchronous parser invocation, and finally closing the document.
func NewWindow(decoded sniff.Decoded, cfg Config) (*Window, error) {
	win := &Window{impl: &windowImpl{
		properties:   make(map[string]interface{}),
		geometry:     defaultGeometry,
		visual:       cfg.Visual,
		storageQuota: cfg.StorageQuota,
	}}
	doc := newDocument(cfg, decoded.Encoding, win)
	win.impl.document = doc
	win.impl.origin = originFromURL(cfg.BaseURL)
	win.impl.parent = win
	win.impl.top = win
	win.impl.frameDepth = 0
	win.impl.selection = newSelection(win)
	win.impl.customElements = newCustomElementRegistry(win)
	installStubs(win)
	if cfg.BeforeParse != nil {
		cfg.BeforeParse(win)
	}
	if err := doc.parseMarkup(decoded.Markup); err != nil {
		return nil, err
	}
	doc.close(decoded.Markup)
	tracer().Debugf("window constructed for %q document", cfg.ContentType.Essence)
	return win, nil
}

// originFromURL derives a window origin from the document URL. URLs
// without an authority component (about:blank in particular) yield the
// opaque origin "null".
func originFromURL(u *url.URL) string {
	if u == nil || u.Host == "" {
		return "null"
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss", "ftp":
		return u.Scheme + "://" + u.Host
	}
	return "null"
}

// --- Accessors -------------------------------------------------------------

// Self returns the window itself.
func (w *Window) Self() *Window {
	return w
}

// Window returns the window itself.
func (w *Window) Window() *Window {
	return w
}

// Frames returns the window itself; subframe collections are managed
// by external frame logic.
func (w *Window) Frames() *Window {
	return w
}

// Length returns the number of subframes, which is always 0 for a
// freshly constructed window.
func (w *Window) Length() int {
	return 0
}

// Parent returns the window's parent window; a window that has not
// been embedded is its own parent.
func (w *Window) Parent() *Window {
	return w.impl.parent
}

// Top returns the window's top window; a window that has not been
// embedded is its own top.
func (w *Window) Top() *Window {
	return w.impl.top
}

// FrameDepth returns the window's depth in the frame topology (0 for a
// top-level window).
func (w *Window) FrameDepth() int {
	return w.impl.frameDepth
}

// Embed reassigns the window's parent/top links. It is the entry point
// for external frame-embedding logic and may be called exactly once
// per window.
func (w *Window) Embed(parent *Window) error {
	if parent == nil {
		return fmt.Errorf("cannot embed window into nil parent")
	}
	if w.impl.embedded {
		return ErrAlreadyEmbedded
	}
	w.impl.parent = parent
	w.impl.top = parent.Top()
	w.impl.frameDepth = parent.FrameDepth() + 1
	w.impl.embedded = true
	return nil
}

// Document returns the window's document.
func (w *Window) Document() *Document {
	return w.impl.document
}

// Origin returns the window's origin, derived from its document.
func (w *Window) Origin() string {
	return w.impl.origin
}

// ReplaceOrigin overwrites the window origin. The origin is
// one-time-replaceable: a second replacement fails.
func (w *Window) ReplaceOrigin(origin string) error {
	if w.impl.originReplaced {
		return ErrOriginReplaced
	}
	w.impl.origin = origin
	w.impl.originReplaced = true
	return nil
}

// Selection returns the window's selection object.
func (w *Window) Selection() *Selection {
	return w.impl.selection
}

// CustomElements returns the window's custom-element registry.
func (w *Window) CustomElements() *CustomElementRegistry {
	return w.impl.customElements
}

// Geometry returns the window's fixed default geometry.
func (w *Window) Geometry() Geometry {
	return w.impl.geometry
}

// PretendToBeVisual reflects the visual-environment flag the window
// was constructed with.
func (w *Window) PretendToBeVisual() bool {
	return w.impl.visual
}

// StorageQuota returns the configured storage quota.
func (w *Window) StorageQuota() int64 {
	return w.impl.storageQuota
}

// GetComputedStyle computes the effective style of an element; see
// cssom.ComputedStyles.
func (w *Window) GetComputedStyle(n *Node) *style.PropertyMap {
	if n == nil {
		return style.NewPropertyMap()
	}
	return n.ComputedStyles()
}

// --- Per-instance interface surface ----------------------------------------

// The spec-declared methods of a window belong directly to the window
// instance, not to a shared interface table: assigning or deleting a
// method on one window must never affect another.

// Get looks up a property in the window's own property table.
func (w *Window) Get(name string) (interface{}, bool) {
	v, ok := w.impl.properties[name]
	return v, ok
}

// Set installs or overrides an own property of this window instance.
func (w *Window) Set(name string, value interface{}) {
	w.impl.properties[name] = value
}

// Delete removes an own property of this window instance.
func (w *Window) Delete(name string) {
	delete(w.impl.properties, name)
}

// Call invokes a method from the window's own property table.
func (w *Window) Call(name string, args ...interface{}) (interface{}, error) {
	v, ok := w.impl.properties[name]
	if !ok {
		return nil, fmt.Errorf("window has no method %q", name)
	}
	switch f := v.(type) {
	case WindowFunc:
		return f(args...), nil
	case func(args ...interface{}) interface{}:
		return f(args...), nil
	}
	return nil, fmt.Errorf("window property %q is not callable", name)
}

// notImplemented is the fixed set of always-present global methods this
// core does not implement. Calling one is not an error: it records a
// diagnostic through the tracing collaborator and returns without
// effect.
var notImplemented = []string{
	"alert", "blur", "confirm", "focus", "moveBy", "moveTo", "open",
	"print", "prompt", "resizeBy", "resizeTo", "scroll", "scrollBy",
	"scrollTo", "stop",
}

func installStubs(w *Window) {
	for _, name := range notImplemented {
		name := name
		w.impl.properties[name] = WindowFunc(func(args ...interface{}) interface{} {
			tracer().Errorf("not implemented: window.%s", name)
			return nil
		})
	}
}
