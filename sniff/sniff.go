package sniff

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ContentKind classifies a media type for the purpose of choosing a
// parsing discipline.
type ContentKind uint8

// Media types either denote lenient markup (HTML), strict markup
// (XML flavors), or something we do not handle.
const (
	KindUnknown ContentKind = iota
	KindMarkup
	KindStrictMarkup
)

// ContentType is a parsed media type descriptor, including its
// parameters (most prominently "charset").
type ContentType struct {
	Essence string            // media type without parameters, e.g. "text/html"
	Params  map[string]string // lower-cased parameter map
	Kind    ContentKind
}

// ParseContentType parses a media type string like
//
//	text/html; charset=ISO-8859-1
//
// into a descriptor. Unparsable media types yield a descriptor of
// KindUnknown together with the parse error; classification of known
// essences never fails.
func ParseContentType(ctype string) (ContentType, error) {
	essence, params, err := mime.ParseMediaType(ctype)
	if err != nil {
		return ContentType{}, fmt.Errorf("cannot parse media type %q: %w", ctype, err)
	}
	ct := ContentType{Essence: essence, Params: params}
	ct.Kind = classify(essence)
	return ct, nil
}

func classify(essence string) ContentKind {
	switch essence {
	case "text/html":
		return KindMarkup
	case "text/xml", "application/xml":
		return KindStrictMarkup
	}
	if strings.HasSuffix(essence, "+xml") {
		return KindStrictMarkup
	}
	return KindUnknown
}

// Charset returns the transport-declared charset parameter, or "" if
// the media type did not carry one.
func (ct ContentType) Charset() string {
	return ct.Params["charset"]
}

// --- Content input ---------------------------------------------------------

// Input is a union type for the accepted kinds of markup input.
// Use Text, Bytes or Reader to construct one.
type Input interface {
	isInput()
}

type textInput string
type bytesInput []byte
type readerInput struct{ r io.Reader }

func (textInput) isInput()   {}
func (bytesInput) isInput()  {}
func (readerInput) isInput() {}

// Text wraps already-decoded markup text. No encoding detection will
// be performed on it.
func Text(markup string) Input { return textInput(markup) }

// Bytes wraps a raw byte buffer containing encoded markup.
func Bytes(b []byte) Input { return bytesInput(b) }

// Reader wraps a streamed view over encoded markup bytes.
func Reader(r io.Reader) Input { return readerInput{r: r} }

// --- Normalization ---------------------------------------------------------

// Decoded is the result of input normalization: markup text plus the
// label of the encoding that has actually been applied. Encoding is
// never empty once normalization completed.
type Decoded struct {
	Markup   string
	Encoding string
}

// prescanBound limits how much of the input the meta prescan may look at.
const prescanBound = 1024

// Normalize turns input into decoded markup text. String input is used
// verbatim and labeled UTF-8. Byte input runs encoding detection in the
// priority order BOM, transport label, meta prescan, content-type
// dependent default. The only possible error stems from draining a
// Reader input; detection itself always resolves.
func Normalize(input Input, ctype ContentType) (Decoded, error) {
	switch inp := input.(type) {
	case textInput:
		return Decoded{Markup: string(inp), Encoding: "utf-8"}, nil
	case bytesInput:
		return decodeBytes([]byte(inp), ctype)
	case readerInput:
		data, err := io.ReadAll(inp.r)
		if err != nil {
			return Decoded{}, fmt.Errorf("cannot drain markup input: %w", err)
		}
		return decodeBytes(data, ctype)
	}
	return Decoded{Markup: "", Encoding: "utf-8"}, nil
}

func decodeBytes(data []byte, ctype ContentType) (Decoded, error) {
	enc, name := detect(data, ctype)
	tracer().Debugf("normalizing %d bytes of markup, encoding resolved to %s", len(data), name)
	decoded, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), data)
	if err != nil {
		// Decoders for the encodings we hand out replace garbage instead
		// of failing, but guard the transform anyway.
		return Decoded{Markup: string(data), Encoding: name}, nil
	}
	return Decoded{Markup: string(decoded), Encoding: name}, nil
}

// detect resolves the character encoding for a markup byte buffer.
// It cannot fail; the final fallback is the mode-dependent default.
func detect(data []byte, ctype ContentType) (encoding.Encoding, string) {
	if enc, name, ok := bomEncoding(data); ok {
		return enc, name
	}
	if label := ctype.Charset(); label != "" {
		if enc, err := htmlindex.Get(label); err == nil {
			name, _ := htmlindex.Name(enc)
			return enc, name
		}
		tracer().Infof("ignoring unknown transport charset label %q", label)
	}
	bound := len(data)
	if bound > prescanBound {
		bound = prescanBound
	}
	if label := xmlDeclEncoding(data[:bound]); label != "" {
		if enc, err := htmlindex.Get(label); err == nil {
			name, _ := htmlindex.Name(enc)
			return enc, name
		}
		tracer().Infof("ignoring unknown XML declaration encoding %q", label)
	}
	// The prescan falls back to windows-1252 when no meta hint is found;
	// that value is then superseded by the mode default below.
	if enc, name, _ := charset.DetermineEncoding(data[:bound], ""); name != "windows-1252" {
		return enc, name
	}
	if ctype.Kind == KindStrictMarkup {
		return unicode.UTF8, "utf-8"
	}
	return charmap.Windows1252, "windows-1252"
}

// xmlDeclEncoding extracts the encoding pseudo-attribute from a leading
// XML declaration, or "". The meta prescan does not see XML
// declarations, so strict markup input gets its own prefix scan.
func xmlDeclEncoding(data []byte) string {
	if !bytes.HasPrefix(data, []byte("<?xml")) {
		return ""
	}
	end := bytes.Index(data, []byte("?>"))
	if end < 0 {
		return ""
	}
	decl := string(data[:end])
	i := strings.Index(decl, "encoding")
	if i < 0 {
		return ""
	}
	rest := strings.TrimLeft(decl[i+len("encoding"):], " \t\r\n")
	if !strings.HasPrefix(rest, "=") {
		return ""
	}
	rest = strings.TrimLeft(rest[1:], " \t\r\n")
	if len(rest) < 2 || (rest[0] != '"' && rest[0] != '\'') {
		return ""
	}
	quote := rest[0]
	if j := strings.IndexByte(rest[1:], quote); j > 0 {
		return rest[1 : 1+j]
	}
	return ""
}

func bomEncoding(data []byte) (encoding.Encoding, string, bool) {
	switch {
	case bytes.HasPrefix(data, []byte{0xef, 0xbb, 0xbf}):
		return unicode.UTF8, "utf-8", true
	case bytes.HasPrefix(data, []byte{0xfe, 0xff}):
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), "utf-16be", true
	case bytes.HasPrefix(data, []byte{0xff, 0xfe}):
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), "utf-16le", true
	}
	return nil, "", false
}
