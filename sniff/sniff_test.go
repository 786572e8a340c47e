package sniff_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/windom/sniff"
	"github.com/stretchr/testify/require"
)

func html(t *testing.T) sniff.ContentType {
	t.Helper()
	ct, err := sniff.ParseContentType("text/html")
	if err != nil {
		t.Fatalf("cannot parse text/html: %v", err)
	}
	return ct
}

func TestContentTypeClassification(t *testing.T) {
	cases := []struct {
		ctype string
		kind  sniff.ContentKind
	}{
		{"text/html", sniff.KindMarkup},
		{"text/html; charset=UTF-8", sniff.KindMarkup},
		{"application/xml", sniff.KindStrictMarkup},
		{"text/xml", sniff.KindStrictMarkup},
		{"application/xhtml+xml", sniff.KindStrictMarkup},
		{"image/svg+xml", sniff.KindStrictMarkup},
		{"text/plain", sniff.KindUnknown},
		{"application/json", sniff.KindUnknown},
	}
	for _, c := range cases {
		ct, err := sniff.ParseContentType(c.ctype)
		if err != nil {
			t.Errorf("cannot parse %q: %v", c.ctype, err)
			continue
		}
		if ct.Kind != c.kind {
			t.Errorf("%q classified as %d, expected %d", c.ctype, ct.Kind, c.kind)
		}
	}
}

func TestNormalizeTextVerbatim(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.sniff")
	defer teardown()
	d, err := sniff.Normalize(sniff.Text("<p>héllo</p>"), html(t))
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if d.Markup != "<p>héllo</p>" {
		t.Errorf("text input was not used verbatim: %q", d.Markup)
	}
	if d.Encoding != "utf-8" {
		t.Errorf("text input should be labeled utf-8, is %q", d.Encoding)
	}
}

func TestNormalizeBOMWinsOverTransportLabel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.sniff")
	defer teardown()
	ct, err := sniff.ParseContentType("text/html; charset=ISO-8859-1")
	if err != nil {
		t.Fatalf("cannot parse media type: %v", err)
	}
	data := append([]byte{0xef, 0xbb, 0xbf}, []byte("<p>hä</p>")...)
	d, err := sniff.Normalize(sniff.Bytes(data), ct)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if d.Encoding != "utf-8" {
		t.Errorf("BOM should win over transport label, encoding is %q", d.Encoding)
	}
	if !strings.Contains(d.Markup, "hä") {
		t.Errorf("markup not decoded as UTF-8: %q", d.Markup)
	}
	if strings.ContainsRune(d.Markup, '\uFEFF') {
		t.Errorf("BOM should be stripped from decoded markup")
	}
}

func TestNormalizeTransportLabel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.sniff")
	defer teardown()
	ct, err := sniff.ParseContentType("text/html; charset=ISO-8859-1")
	require.NoError(t, err)
	data := []byte("<p>h\xe4llo</p>") // 0xe4 is 'ä' in latin-1
	d, err := sniff.Normalize(sniff.Bytes(data), ct)
	require.NoError(t, err)
	if !strings.Contains(d.Markup, "hällo") {
		t.Errorf("expected latin-1 decoding, got %q", d.Markup)
	}
}

func TestNormalizeMetaPrescan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.sniff")
	defer teardown()
	data := []byte(`<html><head><meta charset="iso-8859-15"></head><body>h\xe4</body></html>`)
	d, err := sniff.Normalize(sniff.Bytes(data), html(t))
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if d.Encoding != "iso-8859-15" {
		t.Errorf("meta prescan should resolve iso-8859-15, got %q", d.Encoding)
	}
}

func TestNormalizeXMLDeclaration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.sniff")
	defer teardown()
	xml, err := sniff.ParseContentType("application/xml")
	require.NoError(t, err)
	data := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-15\"?><root>h\xe4</root>")
	d, err := sniff.Normalize(sniff.Bytes(data), xml)
	require.NoError(t, err)
	if d.Encoding != "iso-8859-15" {
		t.Errorf("XML declaration encoding should be honored, got %q", d.Encoding)
	}
	if !strings.Contains(d.Markup, "hä") {
		t.Errorf("expected iso-8859-15 decoding, got %q", d.Markup)
	}

	// declarations without an encoding pseudo-attribute fall through
	d, err = sniff.Normalize(sniff.Bytes([]byte(`<?xml version="1.0"?><root/>`)), xml)
	require.NoError(t, err)
	if d.Encoding != "utf-8" {
		t.Errorf("declaration without encoding should use the strict default, got %q", d.Encoding)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.sniff")
	defer teardown()
	d, err := sniff.Normalize(sniff.Bytes([]byte("<p>plain</p>")), html(t))
	require.NoError(t, err)
	require.Equal(t, "windows-1252", d.Encoding,
		"lenient markup should default to windows-1252")

	xml, err := sniff.ParseContentType("application/xml")
	require.NoError(t, err)
	d, err = sniff.Normalize(sniff.Bytes([]byte("<doc/>")), xml)
	require.NoError(t, err)
	require.Equal(t, "utf-8", d.Encoding, "strict markup should default to utf-8")
}

func TestNormalizeReader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "windom.sniff")
	defer teardown()
	d, err := sniff.Normalize(sniff.Reader(strings.NewReader("<p>hi</p>")), html(t))
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if d.Markup != "<p>hi</p>" {
		t.Errorf("reader input not drained correctly: %q", d.Markup)
	}
}
