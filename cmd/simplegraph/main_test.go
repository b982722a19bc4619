package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"go.arcalot.io/assert"
	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/simplegraph/graphfile"
)

const testGraph = `
nodes:
  main: [a, b, c]
  a: [b, c]
  b: [c, d]
  c: [d, e]
`

func loadTestGraph(t *testing.T, data string) *graphfile.Graph {
	t.Helper()
	g, err := graphfile.Parse([]byte(data), log.NewTestLogger(t))
	assert.NoError(t, err)
	return g
}

func TestRunQuery(t *testing.T) {
	testCases := map[string]struct {
		query        string
		id           string
		expectedCode int
		contains     string
	}{
		"list":            {"list", "", ExitCodeOK, " + main\n   + a\n"},
		"sort":            {"sort", "", ExitCodeOK, "- e\n    - d\n    - c\n    - b\n    - a\n    - main\n"},
		"size":            {"size", "", ExitCodeOK, "result: 6"},
		"paths":           {"paths", "", ExitCodeOK, "result: 17"},
		"check":           {"check", "", ExitCodeOK, "acyclic: true"},
		"subgraph":        {"subgraph", "", ExitCodeOK, "EDGES"},
		"parents":         {"parents", "d", ExitCodeOK, "d,e"},
		"parents-missing": {"parents", "x", ExitCodeNotFound, ""},
		"parents-no-id":   {"parents", "", ExitCodeInvalidData, ""},
		"find":            {"find", "e", ExitCodeOK, "id: e"},
		"find-missing":    {"find", "x", ExitCodeNotFound, ""},
		"remove":          {"remove", "d", ExitCodeOK, "NODE"},
		"unknown-query":   {"shortest-path", "", ExitCodeInvalidData, ""},
	}
	for name, tc := range testCases {
		testCase := tc
		t.Run(name, func(t *testing.T) {
			g := loadTestGraph(t, testGraph)
			root, err := selectRoot(g, "")
			assert.NoError(t, err)
			buf := bytes.NewBuffer(nil)
			code := runQuery(buf, root, testCase.query, testCase.id, log.NewTestLogger(t))
			assert.Equals(t, code, testCase.expectedCode)
			assert.Contains(t, buf.String(), testCase.contains)
		})
	}
}

func TestRunQuery_Cycle(t *testing.T) {
	g := loadTestGraph(t, `
roots: [a]
nodes:
  a: [b]
  b: [a]
`)
	root, err := selectRoot(g, "")
	assert.NoError(t, err)

	for _, query := range []string{"list", "sort", "size", "subgraph"} {
		buf := bytes.NewBuffer(nil)
		assert.Equals(t, runQuery(buf, root, query, "", log.NewTestLogger(t)), ExitCodeCycleDetected)
	}

	buf := bytes.NewBuffer(nil)
	assert.Equals(t, runQuery(buf, root, "check", "", log.NewTestLogger(t)), ExitCodeCycleDetected)
	assert.Contains(t, buf.String(), "acyclic: false")
}

func TestSelectRoot(t *testing.T) {
	g := loadTestGraph(t, testGraph)

	root, err := selectRoot(g, "b")
	assert.NoError(t, err)
	assert.Equals(t, root.ID(), "b")

	_, err = selectRoot(g, "x")
	assert.Error(t, err)

	cyclic := loadTestGraph(t, `
nodes:
  a: [b]
  b: [a]
`)
	_, err = selectRoot(cyclic, "")
	assert.Error(t, err)
}

func TestLoadYamlFile(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "empty.yaml"), []byte(""), 0600))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("cycle_check: eager\n"), 0600))

	data, err := loadYamlFile(resolvePath(dir, "empty.yaml"))
	assert.NoError(t, err)
	assert.Equals(t, len(data.(map[string]any)), 0)

	data, err = loadYamlFile(resolvePath(dir, "config.yaml"))
	assert.NoError(t, err)
	assert.Equals(t, data.(map[string]any)["cycle_check"], any("eager"))

	_, err = loadYamlFile(resolvePath(dir, "missing.yaml"))
	assert.Error(t, err)
}
