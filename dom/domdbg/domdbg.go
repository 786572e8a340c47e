/*
Package domdbg implements helpers to debug a DOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domdbg

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/windom/dom"
	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Dump writes a textual diagram for a DOM (sub-)tree to a Writer.
// If withStyles is set, element nodes are annotated with their computed
// style properties.
func Dump(n *dom.Node, w io.Writer, withStyles bool) error {
	if n == nil {
		return fmt.Errorf("cannot dump nil DOM node")
	}
	tree := treeprint.New()
	tree.SetValue(label(n, withStyles))
	build(n, tree, withStyles)
	_, err := io.WriteString(w, tree.String())
	return err
}

func build(n *dom.Node, br treeprint.Tree, withStyles bool) {
	for _, ch := range n.ChildNodes() {
		switch ch.NodeType() {
		case html.TextNode:
			if txt := strings.TrimSpace(ch.NodeValue()); txt != "" {
				br.AddNode(fmt.Sprintf("%q", shortText(txt)))
			}
		case html.ElementNode:
			build(ch, br.AddBranch(label(ch, withStyles)), withStyles)
		}
	}
}

func label(n *dom.Node, withStyles bool) string {
	l := n.NodeName()
	if withStyles && n.NodeType() == html.ElementNode {
		styles := n.ComputedStyles()
		if styles.Size() > 0 {
			var props []string
			for _, kv := range styles.Properties() {
				props = append(props, kv.Key+"="+kv.Value.String())
			}
			l += " [" + strings.Join(props, " ") + "]"
		}
	}
	return l
}

func shortText(s string) string {
	if len(s) > 20 {
		return s[:20] + "…"
	}
	return s
}
