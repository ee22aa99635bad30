package queryir

import "sort"

// References returns the names of the queries q embeds with {subquery: name},
// sorted and without duplicates.
func References(q Query) []string {
	seen := make(map[string]bool)
	collectBodyRefs(q.Body, seen)

	refs := make([]string, 0, len(seen))
	for name := range seen {
		refs = append(refs, name)
	}
	sort.Strings(refs)
	return refs
}

// ReferenceGraph maps each query name of doc to the names it references.
func ReferenceGraph(doc *Document) map[string][]string {
	graph := make(map[string][]string, len(doc.Queries))
	for _, q := range doc.Queries {
		graph[q.Name] = References(q)
	}
	return graph
}

func collectBodyRefs(b Body, seen map[string]bool) {
	collectPatternRefs(b.Where, seen)
}

func collectPatternRefs(patterns []Pattern, seen map[string]bool) {
	for _, p := range patterns {
		if p.Subquery != "" {
			seen[p.Subquery] = true
		}
		collectPatternRefs(p.Group, seen)
		collectPatternRefs(p.Optional, seen)
		collectPatternRefs(p.Minus, seen)
		if p.Graph != nil {
			collectPatternRefs(p.Graph.Patterns, seen)
		}
		for _, alt := range p.Union {
			collectPatternRefs(alt, seen)
		}
		if p.Subselect != nil {
			collectBodyRefs(*p.Subselect, seen)
		}
	}
}
