/*
Package walk provides concurrent walkers for DOM implementation trees.

Clients create a Walker for a (sub-)tree and chain filter stages onto
it to select nodes. Filter stages form a small pipeline: every stage
runs in its own goroutine, reading nodes from the previous stage and
pushing accepted nodes to the next one. The final link of every chain
must be a call to Promise, which is the synchronization point: calling
the returned future blocks until the pipeline has drained and yields
the selected nodes together with the last error.

	w := walk.NewWalker(node)
	future := w.DescendentsWith(walk.NodeIsText).Promise()
	nodes, err := future()

Walkers operate on the implementation layer (x/net/html nodes); package
dom wraps results back into wrapper nodes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package walk

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'windom.dom'.
func tracer() tracing.Trace {
	return tracing.Select("windom.dom")
}

// ErrInvalidFilter is thrown if a pipeline filter stage is defunct.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// ErrEmptyTree is thrown if a Walker is created for an empty tree.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// ErrNoMoreFiltersAccepted is thrown if a client already called
// Promise, but tried to re-use a walker with another filter.
var ErrNoMoreFiltersAccepted = errors.New("in promise mode; will not accept new filters; use a new walker")

// Predicate is a function type to match against nodes of a tree. It is
// used as an argument for various Walker functions to collect a
// selection of nodes.
type Predicate func(n *html.Node) (bool, error)

// Whatever is a predicate to match anything. It is useful to traverse
// a whole (sub-)tree.
func Whatever() Predicate {
	return func(*html.Node) (bool, error) {
		return true, nil
	}
}

// NodeIsText is a predicate to match text nodes of a DOM.
func NodeIsText() Predicate {
	return func(n *html.Node) (bool, error) {
		return n.Type == html.TextNode, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf() Predicate {
	return func(n *html.Node) (bool, error) {
		return n.FirstChild == nil, nil
	}
}

// ElementWithTag is a predicate to match element nodes by tag name.
func ElementWithTag(tag string) Predicate {
	return func(n *html.Node) (bool, error) {
		return n.Type == html.ElementNode && n.Data == tag, nil
	}
}

// WithAttribute is a predicate to match element nodes carrying an
// attribute value.
func WithAttribute(key, value string) Predicate {
	return func(n *html.Node) (bool, error) {
		if n.Type != html.ElementNode {
			return false, nil
		}
		for _, a := range n.Attr {
			if a.Key == key && a.Namespace == "" {
				return a.Val == value, nil
			}
		}
		return false, nil
	}
}

// filterTask reads one node and pushes any number of result nodes into
// the next pipeline stage.
type filterTask func(n *html.Node, emit func(*html.Node)) error

// Walker holds a pipeline of filter stages over a (sub-)tree. Walkers
// are created by NewWalker; chaining a filter function returns a new
// Walker whose output is the filter's output.
//
// A nil Walker is legal and represents the empty pipeline: all filter
// functions pass it through and its Promise yields ErrEmptyTree.
type Walker struct {
	initial   *html.Node
	out       <-chan *html.Node
	errch     chan error
	promising *bool
}

// NewWalker creates a Walker for the initial node of a (sub-)tree.
// The first chained filter will receive this initial node as input.
//
// If initial is nil, NewWalker returns a nil-Walker, resulting in a
// NOP-pipeline yielding an empty selection and ErrEmptyTree.
func NewWalker(initial *html.Node) *Walker {
	if initial == nil {
		return nil
	}
	tracer().Debugf("new DOM walker, initial node = %v", initial.Data)
	head := make(chan *html.Node, 1)
	head <- initial
	close(head)
	return &Walker{
		initial:   initial,
		out:       head,
		errch:     make(chan error, 8),
		promising: new(bool),
	}
}

// appendStage hooks a new filter stage onto the pipeline and starts
// its worker goroutine.
func (w *Walker) appendStage(task filterTask) *Walker {
	if *w.promising {
		w.fail(ErrNoMoreFiltersAccepted)
		return w
	}
	in := w.out
	out := make(chan *html.Node, 8)
	go func() {
		defer close(out)
		for n := range in {
			if err := task(n, func(m *html.Node) { out <- m }); err != nil {
				w.fail(err)
			}
		}
	}()
	nw := *w
	nw.out = out
	return &nw
}

func (w *Walker) fail(err error) {
	select {
	case w.errch <- err:
	default: // keep the earliest errors, drop the rest
	}
}

// DescendentsWith finds descendents matching a predicate, in document
// order. The search does not include the start node.
//
// If w is nil, DescendentsWith will return nil.
func (w *Walker) DescendentsWith(predicate Predicate) *Walker {
	if w == nil {
		return nil
	}
	if predicate == nil {
		w.fail(ErrInvalidFilter)
		return w
	}
	return w.appendStage(func(n *html.Node, emit func(*html.Node)) error {
		var descend func(*html.Node) error
		descend = func(m *html.Node) error {
			for ch := m.FirstChild; ch != nil; ch = ch.NextSibling {
				ok, err := predicate(ch)
				if err != nil {
					return err // do not descend further
				}
				if ok {
					emit(ch)
				}
				if err := descend(ch); err != nil {
					return err
				}
			}
			return nil
		}
		return descend(n)
	})
}

// AllDescendents traverses all descendents, in document order. The
// traversal does not include the start node. This is just a wrapper
// around w.DescendentsWith(Whatever()).
//
// If w is nil, AllDescendents will return nil.
func (w *Walker) AllDescendents() *Walker {
	return w.DescendentsWith(Whatever())
}

// AncestorWith finds the first ancestor matching the given predicate.
// The search does not include the start node.
//
// If w is nil, AncestorWith will return nil.
func (w *Walker) AncestorWith(predicate Predicate) *Walker {
	if w == nil {
		return nil
	}
	if predicate == nil {
		w.fail(ErrInvalidFilter)
		return w
	}
	return w.appendStage(func(n *html.Node, emit func(*html.Node)) error {
		for anc := n.Parent; anc != nil; anc = anc.Parent {
			ok, err := predicate(anc)
			if err != nil {
				return err
			}
			if ok {
				emit(anc)
				return nil
			}
		}
		return nil // no matching ancestor found, not an error
	})
}

// Filter calls a client-provided predicate on each node of the current
// selection, keeping the nodes it accepts.
//
// If w is nil, Filter will return nil.
func (w *Walker) Filter(predicate Predicate) *Walker {
	if w == nil {
		return nil
	}
	if predicate == nil {
		w.fail(ErrInvalidFilter)
		return w
	}
	return w.appendStage(func(n *html.Node, emit func(*html.Node)) error {
		ok, err := predicate(n)
		if err != nil {
			return err
		}
		if ok {
			emit(n)
		}
		return nil
	})
}

// Promise is a future synchronisation point. Clients call the returned
// function - any time after they received it - to receive the selected
// nodes and a possible error value. Calling the future blocks until
// the pipeline has drained.
//
// Clients must call Promise as the final link of every filter chain,
// even if they do not expect a non-empty selection; without draining
// the pipeline the Walker would leak goroutines.
func (w *Walker) Promise() func() ([]*html.Node, error) {
	if w == nil {
		return func() ([]*html.Node, error) {
			return nil, ErrEmptyTree
		}
	}
	*w.promising = true // blocks chaining of new filters
	signal := make(chan struct{})
	var selection []*html.Node
	var lasterror error
	go func() {
		defer close(signal)
		for n := range w.out {
			selection = append(selection, n)
		}
		select {
		case lasterror = <-w.errch:
		default:
		}
	}()
	return func() ([]*html.Node, error) {
		<-signal
		return selection, lasterror
	}
}
