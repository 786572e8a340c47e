package dom

import (
	"net/http"
	"net/url"

	"github.com/npillmayer/windom/sniff"
)

// ParseMode is the parsing discipline for a document, derived from its
// content type.
type ParseMode uint8

// Lenient markup parsing tolerates ill-formed input (HTML); strict
// markup parsing requires well-formed structured markup (XML flavors).
const (
	LenientMode ParseMode = iota + 1
	StrictMode
)

func (m ParseMode) String() string {
	if m == StrictMode {
		return "strict-markup"
	}
	return "markup"
}

// Config is a fully validated window/document configuration record.
// Clients will not usually construct one directly, but go through the
// option surface of the windom root package, which guarantees the
// record's invariants: the content type classifies as markup or strict
// markup, Mode is derived from that classification, URLs are absolute,
// and location tracking is only enabled in lenient mode.
type Config struct {
	ContentType      sniff.ContentType
	Mode             ParseMode
	BaseURL          *url.URL       // document URL; placeholder about:blank if unset
	Referrer         string         // empty if unset
	IncludeLocations bool           // record node source locations during parsing
	Cookies          http.CookieJar // injectable cookie store
	BeforeParse      func(*Window)  // pre-parse hook, no-op if unset
	Scripting        bool           // parser scripting flag (runScripts pass-through)
	Visual           bool           // pretend-to-be-visual pass-through
	StorageQuota     int64          // storage quota pass-through
}
