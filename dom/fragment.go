package dom

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/npillmayer/windom/sniff"
	"golang.org/x/net/html"
)

// The shared fragment document is a process-wide singleton used to
// parse markup fragments outside of a full document context. It is
// lazily created at most once per process lifetime, reused thereafter
// and never torn down. First use from multiple goroutines is
// serialized by the once-guard.
var (
	fragmentOnce   sync.Once
	fragmentWindow *Window
	fragmentErr    error
)

func sharedFragmentWindow() (*Window, error) {
	fragmentOnce.Do(func() {
		ct, err := sniff.ParseContentType("text/html")
		if err != nil {
			fragmentErr = err
			return
		}
		base, _ := url.Parse("about:blank")
		cfg := Config{
			ContentType: ct,
			Mode:        LenientMode,
			BaseURL:     base,
		}
		decoded := sniff.Decoded{
			Markup:   "<html><head></head><body></body></html>",
			Encoding: "utf-8",
		}
		fragmentWindow, fragmentErr = NewWindow(decoded, cfg)
	})
	return fragmentWindow, fragmentErr
}

// FragmentFromMarkup parses markup text as a detached fragment in the
// body context of the shared fragment document. It returns the
// fragment's root content container, whose children are the parsed
// top-level nodes. The container is owned by the shared document but
// not attached to its tree.
func FragmentFromMarkup(markup string) (*Node, error) {
	win, err := sharedFragmentWindow()
	if err != nil {
		return nil, fmt.Errorf("cannot create shared fragment document: %w", err)
	}
	doc := win.Document()
	body := doc.Body()
	if body == nil {
		return nil, fmt.Errorf("shared fragment document has no body")
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), body.HTMLNode())
	if err != nil {
		return nil, fmt.Errorf("cannot parse markup fragment: %w", err)
	}
	container := &html.Node{Type: html.DocumentNode, Data: "#document-fragment"}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return doc.wrapperFor(container), nil
}
