package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// SourceLocation describes where in the markup source a node
// originated: the byte offset of its start tag within the decoded
// markup text, plus 1-based line and column numbers.
type SourceLocation struct {
	Offset int
	Line   int
	Col    int
}

type taggedLocation struct {
	tag string
	loc SourceLocation
}

// buildLocationIndex maps element nodes of a parsed tree to the source
// positions of their start tags. The markup is re-scanned with the
// tokenizer; recorded start tags are then matched against the tree in
// document order, per tag name. Parser-inserted elements (html, head,
// body for fragments) have no start tag in the source and stay without
// a location.
func buildLocationIndex(markup string, root *html.Node) map[*html.Node]SourceLocation {
	queues := make(map[string][]SourceLocation)
	for _, tl := range scanStartTags(markup) {
		queues[tl.tag] = append(queues[tl.tag], tl.loc)
	}
	index := make(map[*html.Node]SourceLocation)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if q := queues[n.Data]; len(q) > 0 {
				index[n] = q[0]
				queues[n.Data] = q[1:]
			}
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(root)
	return index
}

func scanStartTags(markup string) []taggedLocation {
	z := html.NewTokenizer(strings.NewReader(markup))
	var out []taggedLocation
	offset, line, col := 0, 1, 1
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		raw := z.Raw()
		if tt == html.StartTagToken || tt == html.SelfClosingTagToken {
			name, _ := z.TagName()
			out = append(out, taggedLocation{
				tag: string(name),
				loc: SourceLocation{Offset: offset, Line: line, Col: col},
			})
		}
		for _, b := range raw {
			if b == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
		offset += len(raw)
	}
	return out
}
