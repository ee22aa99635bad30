package sparql

// GraphTemplate is the CONSTRUCT clause: the triples to instantiate for
// each solution.
type GraphTemplate struct {
	triples []*TriplePattern
}

// Construct appends template triples.
func (t *GraphTemplate) Construct(triples ...*TriplePattern) *GraphTemplate {
	t.triples = append(t.triples, triples...)
	return t
}

// Size returns the number of template triples.
func (t *GraphTemplate) Size() int { return len(t.triples) }

// Render implements QueryElement.
func (t *GraphTemplate) Render() string {
	return "CONSTRUCT " + bracketed(joinElements(t.triples, " "))
}

// RenderPretty implements PrettyElement.
func (t *GraphTemplate) RenderPretty(indent int) string {
	lines := make([]string, len(t.triples))
	for i, tp := range t.triples {
		lines[i] = tp.Render()
	}
	return "CONSTRUCT " + bracketedLines(lines, indent)
}
