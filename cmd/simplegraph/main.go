// Package main provides the command line entrypoint for querying graph files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/simplegraph"
	"go.flow.arcalot.io/simplegraph/config"
	"go.flow.arcalot.io/simplegraph/graphfile"
	"go.flow.arcalot.io/simplegraph/internal/tableprinter"
	"gopkg.in/yaml.v3"
)

// These variables are filled using ldflags during the build process.
var (
	version = "development"
	commit  = "unknown"
	date    = "unknown"
)

// ExitCodeOK signals that the program terminated normally.
const ExitCodeOK = 0

// ExitCodeInvalidData signals that the program encountered an invalid graph file, configuration or query.
const ExitCodeInvalidData = 1

// ExitCodeCycleDetected indicates that the query ran into a cycle.
const ExitCodeCycleDetected = 2

// ExitCodeNotFound indicates that the queried ID was not found.
const ExitCodeNotFound = 3

func main() {
	tempLogger := log.New(log.Config{
		Level:       log.LevelInfo,
		Destination: log.DestinationStdout,
		Stdout:      os.Stderr,
	})

	configFile := ""
	dir := "."
	graphFile := "graph.yaml"
	rootID := ""
	query := "list"
	targetID := ""
	printVersion := false

	flag.BoolVar(&printVersion, "version", printVersion, "Print the version and exit.")
	flag.StringVar(&configFile, "config", configFile, "The configuration file to load, if any.")
	flag.StringVar(&dir, "context", dir, "The directory relative graph and config files are resolved against.")
	flag.StringVar(&graphFile, "graph", graphFile, "The graph file to load. Defaults to graph.yaml.")
	flag.StringVar(&rootID, "root", rootID, "The node to start the query from. Defaults to the first root.")
	flag.StringVar(&query, "query", query, "The query to run.")
	flag.StringVar(&targetID, "id", targetID, "The target node ID for parents, find and remove.")
	flag.Usage = func() {
		_, _ = os.Stderr.Write([]byte(`Usage: simplegraph [OPTIONS]

Loads a graph file and runs a single query from one of its roots.

Options:

  -version            Print the version and exit.

  -config FILENAME    The configuration file to load, if any.

  -context DIRECTORY  The directory relative graph and config files are
                      resolved against. Defaults to the current directory.

  -graph FILENAME     The graph file to load. Defaults to graph.yaml.

  -root ID            The node to start the query from. Defaults to the
                      first root of the graph file.

  -query QUERY        One of list, sort, subgraph, parents, find, size,
                      paths, remove, check. Defaults to list.

  -id ID              The target node ID for parents, find and remove.
`))
	}
	flag.Parse()

	if printVersion {
		fmt.Printf(
			"simplegraph\n"+
				"===========\n"+
				"Version: %s\n"+
				"Commit: %s\n"+
				"Date: %s\n",
			version, commit, date,
		)
		return
	}

	var configData any = map[string]any{}
	if configFile != "" {
		var err error
		configData, err = loadYamlFile(resolvePath(dir, configFile))
		if err != nil {
			tempLogger.Errorf("Failed to load configuration file %s (%v)", configFile, err)
			flag.Usage()
			os.Exit(ExitCodeInvalidData)
		}
	}
	cfg, err := config.Load(configData)
	if err != nil {
		tempLogger.Errorf("Failed to load configuration file %s (%v)", configFile, err)
		flag.Usage()
		os.Exit(ExitCodeInvalidData)
	}

	// now we are ready to instantiate our main logger
	cfg.Log.Stdout = os.Stderr
	logger := log.New(cfg.Log).WithLabel("source", "main")

	g, err := graphfile.Load(dir, graphFile, logger)
	if err != nil {
		logger.Errorf("Failed to load graph (%v)", err)
		os.Exit(ExitCodeInvalidData)
	}
	if cfg.CycleCheck == config.CycleCheckEager {
		if err := g.Check(); err != nil {
			logger.Errorf("Cycle check failed (%v)", err)
			os.Exit(ExitCodeCycleDetected)
		}
	}

	root, err := selectRoot(g, rootID)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(ExitCodeInvalidData)
	}
	os.Exit(runQuery(os.Stdout, root, query, targetID, logger))
}

func selectRoot(g *graphfile.Graph, rootID string) (*simplegraph.Node, error) {
	if rootID != "" {
		root, ok := g.Node(rootID)
		if !ok {
			return nil, fmt.Errorf("root node %s not found in graph", rootID)
		}
		return root, nil
	}
	roots := g.Roots()
	if len(roots) == 0 {
		return nil, fmt.Errorf("the graph has no root, please pass -root")
	}
	return roots[0], nil
}

//nolint:funlen
func runQuery(output io.Writer, root *simplegraph.Node, query string, targetID string, logger log.Logger) int {
	requireTarget := func() bool {
		if targetID == "" {
			logger.Errorf("The %s query requires -id", query)
			return false
		}
		return true
	}

	var result any
	var err error
	switch query {
	case "list":
		var list string
		list, err = root.List()
		if err == nil {
			_, _ = io.WriteString(output, list)
			return ExitCodeOK
		}
	case "sort":
		result, err = root.Sort()
	case "size":
		result, err = root.Size()
	case "paths":
		result, err = root.PathCount()
	case "check":
		if checkErr := root.Check(); checkErr != nil {
			logger.Errorf("Cycle check failed (%v)", checkErr)
			if code := writeResult(output, query, root, map[string]any{"acyclic": false}, logger); code != ExitCodeOK {
				return code
			}
			return ExitCodeCycleDetected
		}
		result = map[string]any{"acyclic": true}
	case "subgraph":
		var nodes []*simplegraph.Node
		nodes, err = root.Subgraph()
		if err == nil {
			tableprinter.PrintNodes(output, nodes)
			return ExitCodeOK
		}
	case "parents", "remove":
		if !requireTarget() {
			return ExitCodeInvalidData
		}
		var nodes []*simplegraph.Node
		if query == "parents" {
			nodes, err = root.Parents(targetID)
		} else {
			nodes, err = root.Remove(targetID)
		}
		if err == nil {
			if len(nodes) == 0 {
				logger.Warningf("No edge %s found below %s", targetID, root.ID())
				return ExitCodeNotFound
			}
			tableprinter.PrintNodes(output, nodes)
			return ExitCodeOK
		}
	case "find":
		if !requireTarget() {
			return ExitCodeInvalidData
		}
		var n *simplegraph.Node
		var found bool
		n, found, err = root.Find(targetID)
		if err == nil {
			if !found {
				logger.Warningf("Node %s not found below %s", targetID, root.ID())
				return ExitCodeNotFound
			}
			result = map[string]any{"id": n.ID(), "edges": n.EdgeIDs()}
		}
	default:
		logger.Errorf("Unknown query: %s", query)
		return ExitCodeInvalidData
	}

	if err != nil {
		logger.Errorf("Query %s failed (%v)", query, err)
		cycleErr := &simplegraph.ErrCycleDetected{}
		if errors.As(err, &cycleErr) {
			return ExitCodeCycleDetected
		}
		return ExitCodeInvalidData
	}
	return writeResult(output, query, root, result, logger)
}

func writeResult(output io.Writer, query string, root *simplegraph.Node, result any, logger log.Logger) int {
	data, err := yaml.Marshal(map[string]any{
		"query":  query,
		"root":   root.ID(),
		"result": result,
	})
	if err != nil {
		logger.Errorf("Failed to marshal output (%v)", err)
		return ExitCodeInvalidData
	}
	_, _ = output.Write(data)
	return ExitCodeOK
}

func resolvePath(dir string, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}

func loadYamlFile(configFile string) (any, error) {
	fileContents, err := os.ReadFile(configFile) //nolint:gosec
	if err != nil {
		return nil, err
	}
	var data any
	if err := yaml.Unmarshal(fileContents, &data); err != nil {
		return nil, err
	}
	if data == nil {
		return map[string]any{}, nil
	}
	return data, nil
}
