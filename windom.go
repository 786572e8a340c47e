package windom

import (
	"fmt"

	"github.com/npillmayer/windom/dom"
	"github.com/npillmayer/windom/sniff"
)

// Markup is a constructed window/document environment. It is the
// handle returned by New; the environment's global context is
// available through Window.
type Markup struct {
	window *dom.Window
}

// New constructs a window/document pair from markup input and options.
//
// Input may be text (sniff.Text), a byte buffer (sniff.Bytes) or a
// byte stream (sniff.Reader); byte input runs through encoding
// detection. Option validation happens synchronously before any object
// is built: no partial window is ever exposed on failure.
func New(input sniff.Input, opts ...Option) (*Markup, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	domcfg, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	decoded, err := sniff.Normalize(input, domcfg.ContentType)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("constructing %s window from %d bytes of markup",
		domcfg.Mode, len(decoded.Markup))
	win, err := dom.NewWindow(decoded, domcfg)
	if err != nil {
		return nil, err
	}
	return &Markup{window: win}, nil
}

// Window returns the environment's global context.
func (m *Markup) Window() *dom.Window {
	return m.window
}

// Serialize renders the current document state back to markup text.
func (m *Markup) Serialize() string {
	return m.window.Document().Serialize()
}

// NodeLocation returns the source location metadata recorded for a
// node during parsing. It fails with dom.ErrLocationsNotTracked unless
// the environment was constructed with WithNodeLocations.
func (m *Markup) NodeLocation(n *dom.Node) (dom.SourceLocation, error) {
	if n == nil {
		return dom.SourceLocation{}, fmt.Errorf("cannot locate nil node")
	}
	return n.Location()
}

// Fragment parses markup text as a detached fragment, using a shared,
// lazily created singleton document as parsing context. It returns the
// fragment's root content container.
func Fragment(markup string) (*dom.Node, error) {
	return dom.FragmentFromMarkup(markup)
}
