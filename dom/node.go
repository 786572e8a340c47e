package dom

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/windom/dom/style"
	"github.com/npillmayer/windom/dom/style/cssom"
	"github.com/npillmayer/windom/dom/walk"
	"golang.org/x/net/html"
)

// Node is the wrapper object for one node of a document tree. The
// backing implementation object is the parser's node; wrappers are
// looked up through the owning document and are never duplicated
// (one wrapper per implementation node).
type Node struct {
	doc  *Document
	impl *html.Node
}

// NodeType returns the type of the underlying HTML node (ElementNode,
// TextNode, etc.).
func (n *Node) NodeType() html.NodeType {
	return n.impl.Type
}

// NodeName returns a name for the node; output depends on the node's
// type: "#text" for text nodes, "#document" for the document, the tag
// name for elements.
func (n *Node) NodeName() string {
	switch n.impl.Type {
	case html.ElementNode:
		return n.impl.Data
	case html.TextNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	case html.DocumentNode:
		if n.impl.Data != "" {
			return n.impl.Data
		}
		return "#document"
	}
	return ""
}

// NodeValue returns the node's text data for text and comment nodes,
// and "" otherwise.
func (n *Node) NodeValue() string {
	switch n.impl.Type {
	case html.TextNode, html.CommentNode:
		return n.impl.Data
	}
	return ""
}

// OwnerDocument returns the document owning this node.
func (n *Node) OwnerDocument() *Document {
	return n.doc
}

// HTMLNode exposes the backing implementation node. Internal algorithms
// operate on it directly; external clients should prefer the wrapper's
// entry points.
func (n *Node) HTMLNode() *html.Node {
	return n.impl
}

// ParentNode returns the parent node, if any.
func (n *Node) ParentNode() *Node {
	return n.doc.wrapperFor(n.impl.Parent)
}

// FirstChild returns the first children-node, if any.
func (n *Node) FirstChild() *Node {
	return n.doc.wrapperFor(n.impl.FirstChild)
}

// NextSibling returns the node's next sibling or nil if last.
func (n *Node) NextSibling() *Node {
	return n.doc.wrapperFor(n.impl.NextSibling)
}

// HasChildNodes checks for existence of sub-nodes.
func (n *Node) HasChildNodes() bool {
	return n.impl.FirstChild != nil
}

// ChildNodes returns a list of all children-nodes. Iteration is
// snapshotting: the child list is copied out, so tree mutations after
// the call do not affect a list already handed to a client.
func (n *Node) ChildNodes() NodeList {
	var list NodeList
	for ch := n.impl.FirstChild; ch != nil; ch = ch.NextSibling {
		list = append(list, n.doc.wrapperFor(ch))
	}
	return list
}

// Children returns a list of element child-nodes.
func (n *Node) Children() NodeList {
	var list NodeList
	for ch := n.impl.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			list = append(list, n.doc.wrapperFor(ch))
		}
	}
	return list
}

// HasAttributes checks for existence of attributes.
func (n *Node) HasAttributes() bool {
	return len(n.impl.Attr) > 0
}

// HasAttribute checks for the existence of an attribute key.
func (n *Node) HasAttribute(key string) bool {
	_, ok := n.attr(key)
	return ok
}

// GetAttribute returns the value of an attribute, or "" if unset.
func (n *Node) GetAttribute(key string) string {
	v, _ := n.attr(key)
	return v
}

// SetAttribute sets an attribute on an element node. The value is
// coerced into a string. Setting attributes on non-element nodes or
// using an invalid attribute name is an error.
func (n *Node) SetAttribute(key string, value interface{}) error {
	if n.impl.Type != html.ElementNode {
		return fmt.Errorf("cannot set attribute on %s node", n.NodeName())
	}
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" || strings.ContainsAny(key, " \t\n\"'>/=") {
		return fmt.Errorf("invalid attribute name %q", key)
	}
	val := DOMString(value)
	for i, a := range n.impl.Attr {
		if a.Key == key && a.Namespace == "" {
			n.impl.Attr[i].Val = val
			return nil
		}
	}
	n.impl.Attr = append(n.impl.Attr, html.Attribute{Key: key, Val: val})
	return nil
}

// RemoveAttribute deletes an attribute; removing an absent attribute
// is a no-op.
func (n *Node) RemoveAttribute(key string) {
	for i, a := range n.impl.Attr {
		if a.Key == key && a.Namespace == "" {
			n.impl.Attr = append(n.impl.Attr[:i], n.impl.Attr[i+1:]...)
			return
		}
	}
}

func (n *Node) attr(key string) (string, bool) {
	for _, a := range n.impl.Attr {
		if a.Key == key && a.Namespace == "" {
			return a.Val, true
		}
	}
	return "", false
}

// TextContent returns the text from this node and all descendents.
func (n *Node) TextContent() string {
	var sb strings.Builder
	collectText(n.impl, &sb)
	return sb.String()
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		collectText(ch, sb)
	}
}

// TextNodes collects all text nodes beneath this node, in document
// order. Collection runs through a concurrent walker pipeline; see
// package walk.
func (n *Node) TextNodes() (NodeList, error) {
	future := walk.NewWalker(n.impl).DescendentsWith(walk.NodeIsText()).Promise()
	found, err := future()
	if err != nil {
		return nil, err
	}
	var list NodeList
	for _, m := range found {
		list = append(list, n.doc.wrapperFor(m))
	}
	return list, nil
}

// Walk returns a concurrent walker over the implementation subtree
// rooted at this node. Selected implementation nodes can be wrapped
// again through the owning document's query entry points.
func (n *Node) Walk() *walk.Walker {
	return walk.NewWalker(n.impl)
}

// ComputedStyles computes the effective style property map of an
// element. The map is rebuilt on every call; it is not cached across
// document mutations.
func (n *Node) ComputedStyles() *style.PropertyMap {
	return cssom.ComputedStyles(n.doc.impl.sheets, n.impl)
}

// QuerySelector returns the first descendent element matching a CSS
// selector, or nil.
func (n *Node) QuerySelector(selector string) (*Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("cannot parse selector %q: %w", selector, err)
	}
	return n.doc.wrapperFor(sel.MatchFirst(n.impl)), nil
}

// QuerySelectorAll returns all descendent elements matching a CSS
// selector, in document order.
func (n *Node) QuerySelectorAll(selector string) (NodeList, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("cannot parse selector %q: %w", selector, err)
	}
	var list NodeList
	for _, m := range sel.MatchAll(n.impl) {
		list = append(list, n.doc.wrapperFor(m))
	}
	return list, nil
}

// Location returns the source location of this node within the markup
// the document was parsed from. It fails with ErrLocationsNotTracked
// unless location tracking was enabled at construction time.
func (n *Node) Location() (SourceLocation, error) {
	return n.doc.locationOf(n)
}

func (n *Node) String() string {
	return "<" + n.NodeName() + ">"
}

// --- Node lists ------------------------------------------------------------

// NodeList is a list of DOM nodes.
type NodeList []*Node

// Length returns the number of nodes in the list.
func (l NodeList) Length() int {
	return len(l)
}

// Item returns the i-th node of the list, or nil if out of range.
func (l NodeList) Item(i int) *Node {
	if i < 0 || i >= len(l) {
		return nil
	}
	return l[i]
}

func (l NodeList) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, n := range l {
		sb.WriteString(n.String())
		sb.WriteString(" ")
	}
	sb.WriteString("]")
	return sb.String()
}
