// Package graphfile loads dependency graphs from YAML files. A graph file lists nodes with their edges and,
// optionally, the roots queries should start from:
//
//	roots: [main]
//	nodes:
//	  main: [a, b, c]
//	  a: [b, c]
//	  b: [c, d]
//	  c: [d, e]
//
// Nodes and edges are created in the order they are written. IDs that only appear as an edge become leaf nodes.
package graphfile

import (
	"fmt"
	"os"
	"path/filepath"

	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/simplegraph"
	"go.flow.arcalot.io/simplegraph/internal/yaml"
)

const rootsKey = "roots"
const nodesKey = "nodes"

// Graph is the result of loading a graph file.
type Graph struct {
	nodes map[string]*simplegraph.Node
	order []string
	roots []*simplegraph.Node
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (*simplegraph.Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// IDs returns the IDs of all nodes in the order they were created.
func (g *Graph) IDs() []string {
	result := make([]string, len(g.order))
	copy(result, g.order)
	return result
}

// Roots returns the nodes queries start from. If the file does not list any roots, these are the declared nodes
// no other node depends on.
func (g *Graph) Roots() []*simplegraph.Node {
	result := make([]*simplegraph.Node, len(g.roots))
	copy(result, g.roots)
	return result
}

// Check runs an eager cycle check from every root.
func (g *Graph) Check() error {
	for _, root := range g.roots {
		if err := root.Check(); err != nil {
			return fmt.Errorf("graph reachable from root %s is invalid (%w)", root.ID(), err)
		}
	}
	return nil
}

// Load reads a graph file. Relative file paths are resolved against dir.
func Load(dir string, file string, logger log.Logger) (*Graph, error) {
	path := file
	if !filepath.IsAbs(file) {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("error determining context directory absolute path %s (%w)", dir, err)
		}
		path = filepath.Join(absDir, file)
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("error reading file %s (%w)", path, err)
	}
	logger.Debugf("Loading graph file %s", path)
	g, err := Parse(data, logger)
	if err != nil {
		return nil, fmt.Errorf("invalid graph file %s (%w)", path, err)
	}
	return g, nil
}

// Parse builds a graph from the contents of a graph file.
//
//nolint:funlen
func Parse(data []byte, logger log.Logger) (*Graph, error) {
	document, err := yaml.New().Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML (%w)", err)
	}
	if document.Type() != yaml.TypeIDMap {
		return nil, fmt.Errorf("expected a map at the top level, found %s", document.Type())
	}
	nodesNode, ok := document.MapKey(nodesKey)
	if !ok {
		return nil, fmt.Errorf("key %q not present", nodesKey)
	}
	if nodesNode.Type() != yaml.TypeIDMap {
		return nil, fmt.Errorf("%q on line %d should be a map, found %s", nodesKey, nodesNode.Line(), nodesNode.Type())
	}

	g := &Graph{
		nodes: map[string]*simplegraph.Node{},
	}
	declared := map[string]bool{}
	hasParent := map[string]bool{}
	declaredIDs := nodesNode.MapKeys()
	for _, id := range declaredIDs {
		if declared[id] {
			return nil, fmt.Errorf("node %s is declared more than once", id)
		}
		declared[id] = true
		parent, err := g.getOrCreate(id, logger)
		if err != nil {
			return nil, err
		}
		edgesNode, _ := nodesNode.MapKey(id)
		edgeIDs, err := edgesNode.Strings()
		if err != nil {
			return nil, fmt.Errorf("invalid edges for node %s (%w)", id, err)
		}
		for _, edgeID := range edgeIDs {
			child, err := g.getOrCreate(edgeID, logger)
			if err != nil {
				return nil, fmt.Errorf("invalid edge of node %s (%w)", id, err)
			}
			attached, err := parent.Attach(child)
			if err != nil {
				return nil, fmt.Errorf("failed to attach node %s to node %s (%w)", edgeID, id, err)
			}
			if attached == nil {
				logger.Warningf("Node %s lists edge %s more than once, ignoring the duplicate.", id, edgeID)
				continue
			}
			hasParent[edgeID] = true
		}
	}

	rootsNode, ok := document.MapKey(rootsKey)
	if !ok {
		for _, id := range declaredIDs {
			if !hasParent[id] {
				g.roots = append(g.roots, g.nodes[id])
			}
		}
		return g, nil
	}
	rootIDs, err := rootsNode.Strings()
	if err != nil {
		return nil, fmt.Errorf("invalid %q (%w)", rootsKey, err)
	}
	for _, id := range rootIDs {
		root, ok := g.nodes[id]
		if !ok {
			return nil, fmt.Errorf("root %s is not a node in the graph", id)
		}
		g.roots = append(g.roots, root)
	}
	return g, nil
}

func (g *Graph) getOrCreate(id string, logger log.Logger) (*simplegraph.Node, error) {
	if n, ok := g.nodes[id]; ok {
		return n, nil
	}
	n, err := simplegraph.New(id)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Created node %s", id)
	g.nodes[id] = n
	g.order = append(g.order, id)
	return n, nil
}
