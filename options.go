package windom

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/npillmayer/windom/dom"
	"github.com/npillmayer/windom/sniff"
)

// config collects the caller-supplied optional fields before
// validation. The zero values of unset fields are filled with defaults
// during resolve.
type config struct {
	contentType          string
	url                  string
	referrer             string
	includeNodeLocations bool
	cookieJar            http.CookieJar
	beforeParse          func(*dom.Window)
	runScripts           bool
	pretendToBeVisual    bool
	storageQuota         int64
}

func defaultConfig() *config {
	return &config{
		contentType:  "text/html",
		url:          "about:blank",
		storageQuota: 5_000_000,
	}
}

// Option is a configuration option for constructing a window/document
// environment; see New.
type Option func(*config)

// WithContentType sets the content type of the markup input (default
// "text/html"). The content type determines the parsing mode: strict
// markup content types (XML flavors) are parsed strictly, everything
// else must be "text/html".
func WithContentType(ctype string) Option {
	return func(cfg *config) { cfg.contentType = ctype }
}

// WithURL sets the document's base URL (default "about:blank"). The
// URL must be absolute.
func WithURL(u string) Option {
	return func(cfg *config) { cfg.url = u }
}

// WithReferrer sets the document's referrer URL (default empty). If
// set, the URL must be absolute.
func WithReferrer(u string) Option {
	return func(cfg *config) { cfg.referrer = u }
}

// WithNodeLocations enables tracking of node source locations during
// parsing. Location tracking is only supported for lenient markup
// parsing.
func WithNodeLocations() Option {
	return func(cfg *config) { cfg.includeNodeLocations = true }
}

// WithCookieJar injects a cookie store (default: a fresh empty
// net/http/cookiejar.Jar).
func WithCookieJar(jar http.CookieJar) Option {
	return func(cfg *config) { cfg.cookieJar = jar }
}

// WithBeforeParse installs a pre-parse hook. The hook is invoked with
// the constructed window before any markup is parsed into the
// document; it is the single extension seam into the parsing process.
func WithBeforeParse(hook func(*dom.Window)) Option {
	return func(cfg *config) { cfg.beforeParse = hook }
}

// WithScripts sets the parser's scripting flag (pass-through
// environment flag; this core executes no scripts).
func WithScripts(enabled bool) Option {
	return func(cfg *config) { cfg.runScripts = enabled }
}

// WithVisual sets the pretend-to-be-visual pass-through flag.
func WithVisual(visual bool) Option {
	return func(cfg *config) { cfg.pretendToBeVisual = visual }
}

// WithStorageQuota sets the storage quota pass-through value (default
// 5,000,000).
func WithStorageQuota(quota int64) Option {
	return func(cfg *config) { cfg.storageQuota = quota }
}

// resolve validates the caller-supplied fields and fills in defaults,
// producing a configuration record for the object model bootstrap. All
// validation happens here, synchronously, before any object is built.
func (cfg *config) resolve() (dom.Config, error) {
	var out dom.Config
	ctype, err := sniff.ParseContentType(cfg.contentType)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	switch ctype.Kind {
	case sniff.KindMarkup:
		out.Mode = dom.LenientMode
	case sniff.KindStrictMarkup:
		out.Mode = dom.StrictMode
	default:
		return out, fmt.Errorf("%w: content type %q is neither markup nor strict markup",
			ErrInvalidConfiguration, cfg.contentType)
	}
	out.ContentType = ctype
	if cfg.includeNodeLocations && out.Mode == dom.StrictMode {
		return out, fmt.Errorf("%w: node locations are only tracked in lenient markup parsing",
			ErrInvalidConfiguration)
	}
	out.IncludeLocations = cfg.includeNodeLocations
	base, err := url.Parse(cfg.url)
	if err != nil || !base.IsAbs() {
		return out, fmt.Errorf("%w: base URL %q is not an absolute URL", ErrInvalidURL, cfg.url)
	}
	out.BaseURL = base
	if cfg.referrer != "" {
		ref, err := url.Parse(cfg.referrer)
		if err != nil || !ref.IsAbs() {
			return out, fmt.Errorf("%w: referrer %q is not an absolute URL", ErrInvalidURL, cfg.referrer)
		}
		out.Referrer = ref.String()
	}
	if cfg.cookieJar != nil {
		out.Cookies = cfg.cookieJar
	} else {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return out, fmt.Errorf("cannot create cookie jar: %w", err)
		}
		out.Cookies = jar
	}
	out.BeforeParse = cfg.beforeParse
	out.Scripting = cfg.runScripts
	out.Visual = cfg.pretendToBeVisual
	out.StorageQuota = cfg.storageQuota
	return out, nil
}
