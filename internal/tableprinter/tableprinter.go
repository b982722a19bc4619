// Package tableprinter provides behavior to write tabular data to a given
// destination.
package tableprinter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go.flow.arcalot.io/simplegraph"
)

const (
	tabwriterMinWidth = 6
	tabwriterWidth    = 4
	tabwriterPadding  = 3
	tabwriterPadChar  = ' '
	tabwriterFlags    = tabwriter.FilterHTML
)

// NewTabWriter returns a tabwriter that transforms tabbed columns into aligned
// text.
func NewTabWriter(output io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(output, tabwriterMinWidth, tabwriterWidth, tabwriterPadding, tabwriterPadChar, tabwriterFlags)
}

// PrintTwoColumnTable writes a two column table with headers to a given
// output destination.
func PrintTwoColumnTable(output io.Writer, headers []string, rows [][]string) {
	w := NewTabWriter(output)

	// column headers are at the top, so they are written first
	for _, col := range headers {
		_, _ = fmt.Fprint(w, strings.ToUpper(col), "\t")
	}
	_, _ = fmt.Fprintln(w)

	// rows form the body of the table
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, row[0], "\t", row[1])
	}

	_ = w.Flush()
}

// PrintNodes writes one row per node with the node ID and its direct edges, in
// the order the nodes are given.
func PrintNodes(output io.Writer, nodes []*simplegraph.Node) {
	rows := make([][]string, len(nodes))
	for i, n := range nodes {
		edges := "-"
		if !n.Empty() {
			edges = strings.Join(n.EdgeIDs(), ",")
		}
		rows[i] = []string{n.ID(), edges}
	}
	PrintTwoColumnTable(output, []string{"node", "edges"}, rows)
}
