package dom

import (
	"fmt"

	"golang.org/x/net/html"
)

// Selection represents the text selection within a window. A freshly
// constructed window carries an empty (collapsed) selection. This core
// performs no rendering, so selections are pure bookkeeping: anchor
// and focus positions within the document tree.
type Selection struct {
	window       *Window
	anchor       *Node
	focus        *Node
	anchorOffset int
	focusOffset  int
}

func newSelection(w *Window) *Selection {
	return &Selection{window: w}
}

// AnchorNode returns the node the selection starts in, or nil for an
// empty selection.
func (s *Selection) AnchorNode() *Node {
	return s.anchor
}

// FocusNode returns the node the selection ends in, or nil for an
// empty selection.
func (s *Selection) FocusNode() *Node {
	return s.focus
}

// AnchorOffset returns the offset of the selection start within its
// anchor node.
func (s *Selection) AnchorOffset() int {
	return s.anchorOffset
}

// FocusOffset returns the offset of the selection end within its focus
// node.
func (s *Selection) FocusOffset() int {
	return s.focusOffset
}

// IsCollapsed tells if the selection is empty or a single caret
// position.
func (s *Selection) IsCollapsed() bool {
	return s.anchor == s.focus && s.anchorOffset == s.focusOffset
}

// Collapse sets the selection to a caret at (node, offset). A nil node
// clears the selection. Negative offsets are an error.
func (s *Selection) Collapse(node *Node, offset int) error {
	if node == nil {
		s.anchor, s.focus = nil, nil
		s.anchorOffset, s.focusOffset = 0, 0
		return nil
	}
	if offset < 0 {
		return fmt.Errorf("selection offset must not be negative: %d", offset)
	}
	s.anchor, s.focus = node, node
	s.anchorOffset, s.focusOffset = offset, offset
	return nil
}

// SelectAllChildren replaces the selection with one spanning all
// children of a node.
func (s *Selection) SelectAllChildren(node *Node) error {
	if node == nil {
		return fmt.Errorf("cannot select children of nil node")
	}
	s.anchor, s.focus = node, node
	s.anchorOffset = 0
	s.focusOffset = node.ChildNodes().Length()
	return nil
}

// String returns the selected text. For the bookkeeping-only selection
// of this core that is the text content spanned within the anchor
// node.
func (s *Selection) String() string {
	if s.anchor == nil {
		return ""
	}
	if s.IsCollapsed() {
		return ""
	}
	if s.anchor.NodeType() == html.TextNode {
		text := s.anchor.NodeValue()
		lo, hi := s.anchorOffset, s.focusOffset
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo > len(text) {
			lo = len(text)
		}
		if hi > len(text) {
			hi = len(text)
		}
		return text[lo:hi]
	}
	return s.anchor.TextContent()
}
