package simplegraph

import (
	"fmt"

	"go.arcalot.io/dgraph"
	"go.arcalot.io/lang"
)

// DAG exports the current node and everything reachable from it into a dgraph.DirectedGraph keyed by node ID. The
// export does not walk through Resolve, so a cycle is either reported by HasCycles on the result or rejected while
// connecting nodes. Distinct nodes sharing an ID are merged into the first one encountered, so the edges of the
// later instances are not part of the result.
func (n *Node) DAG() (dgraph.DirectedGraph[*Node], error) {
	dag, _, err := n.export()
	return dag, err
}

// export builds the dgraph and reports whether any ID was shared by more than one node instance.
func (n *Node) export() (dgraph.DirectedGraph[*Node], bool, error) {
	dag := dgraph.New[*Node]()
	seen := map[string]*Node{}
	merged := false
	queue := []*Node{n}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if first, ok := seen[current.id]; ok {
			if first != current {
				merged = true
			}
			continue
		}
		seen[current.id] = current
		if _, err := dag.AddNode(current.id, current); err != nil {
			return nil, merged, fmt.Errorf("failed to add node %s to the DAG (%w)", current.id, err)
		}
		queue = append(queue, current.Edges()...)
	}

	for id, current := range seen {
		dagNode := lang.Must2(dag.GetNodeByID(id))
		for _, childID := range current.order {
			if childID == id {
				return nil, merged, &ErrCycleDetected{
					Path: []string{id, id},
					Loop: []string{id, id},
				}
			}
			if err := dagNode.Connect(childID); err != nil {
				return nil, merged, fmt.Errorf("failed to connect node %s to node %s in the DAG (%w)", id, childID, err)
			}
		}
	}
	return dag, merged, nil
}

// Check eagerly verifies that no cycle is reachable from the current node. It is the opt-in counterpart of the lazy
// detection performed by every query. The dgraph export answers directly only when every ID belongs to exactly one
// node and no cycle was found; otherwise the verdict comes from a Resolve walk, so Check agrees with the queries.
func (n *Node) Check() error {
	dag, merged, err := n.export()
	if err == nil && !merged && !dag.HasCycles() {
		return nil
	}
	_, err = n.Resolve()
	return err
}
