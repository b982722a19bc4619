package simplegraph

import (
	"go.flow.arcalot.io/simplegraph/internal/stack"
)

// Hook is a callback invoked by Resolve for a node entered during a walk. It receives the Visitor driving the walk
// so it can read the query target, accumulate results, or stop the walk with Done.
type Hook[R any] func(v *Visitor[R], n *Node)

// Visitor holds the state of a single depth-first walk. A Visitor is created for exactly one Resolve call and
// should be discarded afterwards.
type Visitor[R any] struct {
	// Target is the ID a query is looking for. It defaults to the ID of the node the Visitor was created for.
	Target string
	// Results accumulates the query result. Its meaning depends on the query.
	Results R
	// Visit is called when a node is entered, before its edges are walked.
	Visit Hook[R]
	// After is called when a node is left, after its edges have been walked.
	After Hook[R]

	root     string
	ids      []string
	visited  map[string]bool
	visiting map[string]bool
	path     stack.Stack[string]
	exit     bool
}

// NewVisitor creates a fresh Visitor anchored to the given node. The visit hook may be nil. The After hook can be
// set on the returned Visitor before the walk starts.
func NewVisitor[R any](root *Node, visit Hook[R]) *Visitor[R] {
	return &Visitor[R]{
		Target:   root.id,
		Visit:    visit,
		root:     root.id,
		visited:  map[string]bool{},
		visiting: map[string]bool{},
		path:     stack.NewStack[string](),
	}
}

// Visitor creates a fresh Visitor anchored to the current node that collects nodes.
func (n *Node) Visitor(visit Hook[[]*Node]) *Visitor[[]*Node] {
	return NewVisitor[[]*Node](n, visit)
}

// Done stops the walk from entering any further node. Calls already in progress return normally, so their After
// hooks still run.
func (v *Visitor[R]) Done() {
	v.exit = true
}

// Exited returns true once Done has been called.
func (v *Visitor[R]) Exited() bool {
	return v.exit
}

// Root returns the ID of the node the Visitor was created for.
func (v *Visitor[R]) Root() string {
	return v.root
}

// IDs returns every ID entered during the walk, in traversal order. Nodes entered again after being fully visited
// are not repeated.
func (v *Visitor[R]) IDs() []string {
	result := make([]string, len(v.ids))
	copy(result, v.ids)
	return result
}

// Visited returns true if the node with the given ID has been fully walked.
func (v *Visitor[R]) Visited(id string) bool {
	return v.visited[id]
}

// Visiting returns true if the node with the given ID is open on the current path.
func (v *Visitor[R]) Visiting(id string) bool {
	return v.visiting[id]
}

// Depth returns the depth of the node currently being walked, with the starting node at 0. Outside of a walk it
// returns -1.
func (v *Visitor[R]) Depth() int {
	return v.path.Size() - 1
}
