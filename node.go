// Package simplegraph provides an in-memory directed dependency graph. Nodes are linked by edges meaning "depends
// on", and every query is a depth-first walk driven by a Visitor through Resolve. Cycles are not prevented when
// edges are attached; they are reported when a walk runs into one.
package simplegraph

// Node is a single vertex of the dependency graph. The ID is fixed at construction, while the edges may be changed
// with Attach and Detach. A Node may be attached under any number of parents.
//
// Nodes are not safe for concurrent mutation.
type Node struct {
	id    string
	edges map[string]*Node
	order []string
}

// New creates a Node with the given ID and no edges. The ID must not be empty.
func New(id string) (*Node, error) {
	if id == "" {
		return nil, &ErrInvalidArgument{
			Argument: "id",
			Reason:   "a node requires a non-empty string id",
		}
	}
	return &Node{
		id:    id,
		edges: map[string]*Node{},
	}, nil
}

// ID returns the identifier of the node.
func (n *Node) ID() string {
	return n.id
}

// Attach adds an edge from the current node to child, keyed by the child's ID, and returns the attached child. If an
// edge with the same ID already exists the existing edge is kept and nil is returned. A child without an ID, such as
// a zero-value Node, is rejected with an ErrTypeMismatch. Attach does not check for cycles.
func (n *Node) Attach(child *Node) (*Node, error) {
	if child == nil {
		return nil, &ErrTypeMismatch{
			Expected: "*simplegraph.Node",
			Got:      "nil",
		}
	}
	if child.id == "" {
		return nil, &ErrTypeMismatch{
			Expected: "*simplegraph.Node with a non-empty id",
			Got:      "node without id",
		}
	}
	if n.edges == nil {
		n.edges = map[string]*Node{}
	}
	if _, ok := n.edges[child.id]; ok {
		return nil, nil
	}
	n.edges[child.id] = child
	n.order = append(n.order, child.id)
	return child, nil
}

// Detach removes the edge with the given ID and returns the node it pointed to. The detached node is left untouched,
// so it remains attached to any other parent.
func (n *Node) Detach(id string) (*Node, bool) {
	child, ok := n.edges[id]
	if !ok {
		return nil, false
	}
	delete(n.edges, id)
	for i, edgeID := range n.order {
		if edgeID == id {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
	return child, true
}

// Has returns true if the node has a direct edge with the given ID.
func (n *Node) Has(id string) bool {
	_, ok := n.edges[id]
	return ok
}

// Empty returns true if the node has no edges.
func (n *Node) Empty() bool {
	return len(n.order) == 0
}

// Edge returns the direct child with the given ID.
func (n *Node) Edge(id string) (*Node, bool) {
	child, ok := n.edges[id]
	return child, ok
}

// Edges returns the direct children in the order they were attached.
func (n *Node) Edges() []*Node {
	result := make([]*Node, len(n.order))
	for i, id := range n.order {
		result[i] = n.edges[id]
	}
	return result
}

// EdgeIDs returns the IDs of the direct children in the order they were attached.
func (n *Node) EdgeIDs() []string {
	result := make([]string, len(n.order))
	copy(result, n.order)
	return result
}
