package simplegraph

import (
	"strings"
)

// Remove detaches the edge with the given ID from the current node and from every node reachable from it. It
// returns the nodes the edge was removed from.
func (n *Node) Remove(id string) ([]*Node, error) {
	v := n.Visitor(func(v *Visitor[[]*Node], current *Node) {
		if _, ok := current.Detach(v.Target); ok {
			v.Results = append(v.Results, current)
		}
	})
	v.Target = id
	if _, err := Resolve(n, v); err != nil {
		return nil, err
	}
	return v.Results, nil
}

// Parents returns every node reachable from the current node, itself included, that has a direct edge with the
// given ID. Each node is reported once.
func (n *Node) Parents(id string) ([]*Node, error) {
	v := n.Visitor(func(v *Visitor[[]*Node], current *Node) {
		if !v.Visited(current.id) && current.Has(v.Target) {
			v.Results = append(v.Results, current)
		}
	})
	v.Target = id
	if _, err := Resolve(n, v); err != nil {
		return nil, err
	}
	return v.Results, nil
}

// Dependants is an alias of Parents.
func (n *Node) Dependants(id string) ([]*Node, error) {
	return n.Parents(id)
}

// Subgraph returns every node reachable from the current node, excluding the node itself. Shared nodes are
// reported once, in the order they are first entered.
func (n *Node) Subgraph() ([]*Node, error) {
	v := n.Visitor(func(v *Visitor[[]*Node], current *Node) {
		if !v.Visited(current.id) && current.id != v.Target {
			v.Results = append(v.Results, current)
		}
	})
	if _, err := Resolve(n, v); err != nil {
		return nil, err
	}
	return v.Results, nil
}

// Size returns the number of distinct nodes reachable from the current node, the node itself included. A node
// shared by several parents is counted once.
func (n *Node) Size() (int, error) {
	nodes, err := n.Subgraph()
	if err != nil {
		return 0, err
	}
	return len(nodes) + 1, nil
}

// PathCount returns the number of distinct paths from the current node to its descendants: one per edge plus the
// path count of every child. A node shared by two parents is counted twice. Use Size for the number of distinct
// nodes.
func (n *Node) PathCount() (int, error) {
	v := NewVisitor[int](n, func(v *Visitor[int], _ *Node) {
		v.Results++
	})
	if _, err := Resolve(n, v); err != nil {
		return 0, err
	}
	return v.Results - 1, nil
}

// Descendant searches the graph below the current node for a node with the given ID. The search stops at the first
// match in depth-first pre-order, which is not necessarily the shallowest one.
func (n *Node) Descendant(id string) (*Node, bool, error) {
	v := n.Visitor(func(v *Visitor[[]*Node], current *Node) {
		if child, ok := current.Edge(v.Target); ok {
			v.Results = append(v.Results, child)
			v.Done()
		}
	})
	v.Target = id
	if _, err := Resolve(n, v); err != nil {
		return nil, false, err
	}
	if len(v.Results) == 0 {
		return nil, false, nil
	}
	return v.Results[0], true, nil
}

// Find is an alias of Descendant.
func (n *Node) Find(id string) (*Node, bool, error) {
	return n.Descendant(id)
}

// List renders the graph below the current node as an indented tree. Nodes with edges are prefixed with "+", leaves
// with "-". A shared node is printed once for every path leading to it.
func (n *Node) List() (string, error) {
	v := NewVisitor[*strings.Builder](n, func(v *Visitor[*strings.Builder], current *Node) {
		v.Results.WriteString(strings.Repeat(" ", 2*v.Depth()+1))
		if current.Empty() {
			v.Results.WriteString("- ")
		} else {
			v.Results.WriteString("+ ")
		}
		v.Results.WriteString(current.id)
		v.Results.WriteString("\n")
	})
	v.Results = &strings.Builder{}
	if _, err := Resolve(n, v); err != nil {
		return "", err
	}
	return v.Results.String(), nil
}

// Sort returns the IDs of the current node and its descendants so that every node comes after all the nodes it
// depends on. Leaves come first, followed by the other nodes in the order their walk completes.
func (n *Node) Sort() ([]string, error) {
	v := NewVisitor[[]string](n, nil)
	v.After = func(v *Visitor[[]string], current *Node) {
		if v.Visited(current.id) {
			return
		}
		if current.Empty() {
			v.Results = append([]string{current.id}, v.Results...)
		} else {
			v.Results = append(v.Results, current.id)
		}
	}
	if _, err := Resolve(n, v); err != nil {
		return nil, err
	}
	return v.Results, nil
}
