package simplegraph

// Resolve walks the node and everything reachable from it depth-first, following edges in the order they were
// attached. The Visit hook runs pre-order and the After hook post-order. If v is nil a fresh Visitor is used.
//
// A node that was already fully walked may be entered again through another parent; this is not a cycle and it is
// walked again. Entering a node that is still open on the current path returns an ErrCycleDetected and no Visitor,
// since its state is no longer consistent.
func Resolve[R any](n *Node, v *Visitor[R]) (*Visitor[R], error) {
	if v == nil {
		v = NewVisitor[R](n, nil)
	}
	if err := resolve(n, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Resolve walks the graph from the current node with a fresh Visitor.
func (n *Node) Resolve() (*Visitor[[]*Node], error) {
	return Resolve[[]*Node](n, nil)
}

func resolve[R any](n *Node, v *Visitor[R]) error {
	id := n.id
	if !v.visited[id] || v.visiting[id] {
		v.ids = append(v.ids, id)
	}
	if v.visiting[id] {
		return &ErrCycleDetected{
			Path: v.IDs(),
			Loop: append(v.path.From(v.path.IndexOf(id)), id),
		}
	}

	v.visiting[id] = true
	v.path.Push(id)

	if v.Visit != nil {
		v.Visit(v, n)
	}

	if !v.exit {
		for _, child := range n.Edges() {
			if err := resolve(child, v); err != nil {
				return err
			}
			if v.exit {
				break
			}
		}
	}

	if v.After != nil {
		v.After(v, n)
	}

	v.path.Pop()
	v.visited[id] = true
	v.visiting[id] = false
	return nil
}
