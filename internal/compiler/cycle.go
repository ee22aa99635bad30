package compiler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/spanqit/internal/queryir"
)

// CycleWarning represents a cycle of sub-query references.
//
// A query that reaches itself through {subquery: ...} patterns can never be
// rendered; the querysparql compiler fails on it. Static analysis reports
// every such cycle at once, before any query is compiled.
type CycleWarning struct {
	Path    []string `json:"path"`    // Cycle path: ["a", "b", "a"]
	Message string   `json:"message"` // Human-readable description
	Level   string   `json:"level"`   // "error"
}

// AnalyzeCycles performs static cycle analysis on a query document.
//
// The algorithm:
//  1. Build the query → referenced queries graph
//  2. Use Tarjan's algorithm to find strongly connected components
//  3. Report each SCC with size > 1 or self-loops as a cycle
//
// References to unknown queries are ignored here; queryir.Validate
// reports them. A DAG (no cycles) returns an empty list. Results are sorted
// by their first query name.
func AnalyzeCycles(doc *queryir.Document) []CycleWarning {
	if doc == nil || len(doc.Queries) == 0 {
		return []CycleWarning{}
	}

	graph := buildDependencyGraph(doc)
	sccs := tarjanSCC(graph)

	warnings := []CycleWarning{}
	for _, scc := range sccs {
		if len(scc) > 1 || (len(scc) == 1 && hasSelfLoop(scc[0], graph)) {
			warnings = append(warnings, cycleSCCToWarning(scc, graph))
		}
	}
	sort.Slice(warnings, func(i, j int) bool {
		return warnings[i].Path[0] < warnings[j].Path[0]
	})
	return warnings
}

// dependencyGraph maps query name → names of the queries it embeds.
type dependencyGraph map[string][]string

// buildDependencyGraph keeps only edges between queries of the document.
func buildDependencyGraph(doc *queryir.Document) dependencyGraph {
	graph := make(dependencyGraph)
	for name, refs := range queryir.ReferenceGraph(doc) {
		if graph[name] == nil {
			graph[name] = []string{}
		}
		for _, ref := range refs {
			if _, ok := doc.Lookup(ref); ok {
				graph[name] = append(graph[name], ref)
			}
		}
	}
	return graph
}

// hasSelfLoop checks if a node has an edge to itself.
func hasSelfLoop(node string, graph dependencyGraph) bool {
	for _, neighbor := range graph[node] {
		if neighbor == node {
			return true
		}
	}
	return false
}

// tarjanSCC finds strongly connected components using Tarjan's algorithm.
//
// Nodes are visited in name order so the output is stable. The members of
// each SCC are sorted by name.
func tarjanSCC(graph dependencyGraph) [][]string {
	var (
		index   = 0
		stack   []string
		indices = make(map[string]int)
		lowlink = make(map[string]int)
		onStack = make(map[string]bool)
		sccs    [][]string
	)

	var strongConnect func(string)
	strongConnect = func(v string) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range graph[v] {
			if _, visited := indices[w]; !visited {
				strongConnect(w)
				lowlink[v] = min(lowlink[v], lowlink[w])
			} else if onStack[w] {
				lowlink[v] = min(lowlink[v], indices[w])
			}
		}

		// If v is a root node, pop the stack and create an SCC
		if lowlink[v] == indices[v] {
			var scc []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sort.Strings(scc)
			sccs = append(sccs, scc)
		}
	}

	nodes := make([]string, 0, len(graph))
	for node := range graph {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)
	for _, node := range nodes {
		if _, visited := indices[node]; !visited {
			strongConnect(node)
		}
	}

	return sccs
}

// cycleSCCToWarning converts an SCC to a CycleWarning.
// For self-loops, the path is [name, name].
func cycleSCCToWarning(scc []string, graph dependencyGraph) CycleWarning {
	if len(scc) == 1 {
		name := scc[0]
		return CycleWarning{
			Path:    []string{name, name},
			Message: fmt.Sprintf("query embeds itself: %s -> %s", name, name),
			Level:   "error",
		}
	}

	path := reconstructCyclePath(scc, graph)
	return CycleWarning{
		Path:    path,
		Message: fmt.Sprintf("reference cycle: %s", strings.Join(path, " -> ")),
		Level:   "error",
	}
}

// reconstructCyclePath builds a cycle path from an SCC.
//
// Strategy: start at the first node, follow edges to other SCC members,
// continue until we return to start node.
func reconstructCyclePath(scc []string, graph dependencyGraph) []string {
	if len(scc) == 0 {
		return []string{}
	}

	sccSet := make(map[string]bool)
	for _, node := range scc {
		sccSet[node] = true
	}

	start := scc[0]
	current := start
	path := []string{current}
	visited := make(map[string]bool)

	for {
		visited[current] = true

		var next string
		for _, neighbor := range graph[current] {
			if sccSet[neighbor] && (!visited[neighbor] || neighbor == start) {
				next = neighbor
				break
			}
		}

		if next == "" {
			break
		}

		path = append(path, next)

		if next == start {
			break
		}

		current = next
	}

	return path
}
