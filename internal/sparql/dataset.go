package sparql

// FromClause names one graph of the query dataset.
type FromClause struct {
	iri   IRI
	named bool
}

// IsNamed reports whether this is a FROM NAMED clause.
func (f FromClause) IsNamed() bool { return f.named }

// Render implements QueryElement.
func (f FromClause) Render() string {
	if f.named {
		return "FROM NAMED " + f.iri.Render()
	}
	return "FROM " + f.iri.Render()
}

// Dataset is the ordered list of FROM and FROM NAMED clauses.
type Dataset struct {
	clauses []FromClause
}

// From appends clauses, keeping insertion order.
func (d *Dataset) From(clauses ...FromClause) *Dataset {
	d.clauses = append(d.clauses, clauses...)
	return d
}

// Size returns the number of clauses.
func (d *Dataset) Size() int { return len(d.clauses) }

// IsEmpty reports whether the dataset has no clauses.
func (d *Dataset) IsEmpty() bool { return len(d.clauses) == 0 }

// Render implements QueryElement.
func (d *Dataset) Render() string {
	return joinElements(d.clauses, " ")
}

// RenderPretty puts each clause on its own line.
func (d *Dataset) RenderPretty(indent int) string {
	return joinElements(d.clauses, "\n"+indentation(indent))
}
