package production

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/comalice/fsmx"
)

// Edge represents one drawn transition; parallel transitions share an edge.
type Edge struct {
	From  string
	To    string
	Label string
}

// ExportDOT generates Graphviz DOT source for a table-driven machine. Final states are
// drawn as double circles and the initial state is marked by an arrow from a point.
// Output is sorted so the same table always renders the same text.
func ExportDOT[S, A comparable](name string, table fsmx.Table[S, A], initial S, final []S) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `digraph %s {
  rankdir=LR;
  node [shape=circle, fontsize=10];
  edge [fontsize=9];
`, strconv.Quote(name))

	finalSet := make(map[string]bool, len(final))
	for _, s := range final {
		finalSet[label(s)] = true
	}

	buf.WriteString("  \"__start\" [shape=point];\n")
	for _, node := range collectNodes(table, initial, final) {
		shape := ""
		if finalSet[node] {
			shape = " [shape=doublecircle]"
		}
		fmt.Fprintf(&buf, "  %s%s;\n", strconv.Quote(node), shape)
	}

	fmt.Fprintf(&buf, "  \"__start\" -> %s;\n", strconv.Quote(label(initial)))
	for _, edge := range collectEdges(table) {
		fmt.Fprintf(&buf, "  %s -> %s [label=%s];\n", strconv.Quote(edge.From), strconv.Quote(edge.To), strconv.Quote(edge.Label))
	}

	buf.WriteString("}\n")
	return buf.String()
}

type pair struct{ from, to string }

func label(v any) string {
	return fmt.Sprint(v)
}

// collectNodes returns the sorted labels of every state the table, initial or final mention.
func collectNodes[S, A comparable](table fsmx.Table[S, A], initial S, final []S) []string {
	seen := map[string]bool{label(initial): true}
	for k, to := range table {
		seen[label(k.State)] = true
		seen[label(to)] = true
	}
	for _, s := range final {
		seen[label(s)] = true
	}
	nodes := make([]string, 0, len(seen))
	for n := range seen {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	return nodes
}

// collectEdges merges transitions between the same pair of states into one edge
// labelled with the sorted, comma-separated symbols.
func collectEdges[S, A comparable](table fsmx.Table[S, A]) []Edge {
	symbols := make(map[pair][]string)
	for k, to := range table {
		p := pair{from: label(k.State), to: label(to)}
		symbols[p] = append(symbols[p], label(k.Symbol))
	}

	edges := make([]Edge, 0, len(symbols))
	for p, syms := range symbols {
		sort.Strings(syms)
		edges = append(edges, Edge{From: p.from, To: p.to, Label: strings.Join(syms, ",")})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}
