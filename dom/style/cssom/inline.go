package cssom

import (
	"strings"

	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/windom/dom/style"
)

// InlineDeclarations parses the contents of a style="…" attribute into
// key-value pairs, preserving declaration order. Compound properties
// (margin, padding, border-…) are split up into their fine grained
// components. An "!important" marker is stripped; inline declarations
// dominate the cascade anyway.
func InlineDeclarations(styleattr string) []style.KeyValue {
	if strings.TrimSpace(styleattr) == "" {
		return nil
	}
	sc := scanner.New(styleattr)
	var decls []style.KeyValue
	var key string
	var raw strings.Builder
	flush := func() {
		k := strings.ToLower(strings.TrimSpace(key))
		v := strings.TrimSpace(raw.String())
		if i := strings.LastIndex(v, "!"); i >= 0 && strings.TrimSpace(v[i+1:]) == "important" {
			v = strings.TrimSpace(v[:i])
		}
		if k == "" || v == "" {
			return
		}
		decls = append(decls, style.SplitCompoundProperty(k, style.Property(v))...)
	}
	for {
		tok := sc.Next()
		if tok.Type == scanner.TokenEOF || tok.Type == scanner.TokenError {
			flush()
			break
		}
		switch tok.Type {
		case scanner.TokenComment:
			// skip
		case scanner.TokenS:
			raw.WriteString(" ")
		case scanner.TokenChar:
			switch tok.Value {
			case ":":
				if key == "" {
					key = raw.String()
					raw.Reset()
					continue
				}
				raw.WriteString(tok.Value)
			case ";":
				flush()
				key = ""
				raw.Reset()
			default:
				raw.WriteString(tok.Value)
			}
		default:
			raw.WriteString(tok.Value)
		}
	}
	return decls
}
