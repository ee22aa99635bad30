package sparql

// Projection is the SELECT clause: modifiers plus the projected elements.
//
// An explicit list always wins over ALL. ALL, or an empty list, renders "*".
type Projection struct {
	distinct bool
	all      bool
	elements []Projectable
}

// Select appends projected elements. Duplicates are kept.
func (p *Projection) Select(elements ...Projectable) *Projection {
	p.elements = append(p.elements, elements...)
	return p
}

// Distinct sets the DISTINCT modifier.
func (p *Projection) Distinct(distinct bool) *Projection {
	p.distinct = distinct
	return p
}

// All requests SELECT *. It is ignored once explicit elements are present.
func (p *Projection) All(all bool) *Projection {
	p.all = all
	return p
}

// IsDistinct reports whether DISTINCT is set.
func (p *Projection) IsDistinct() bool { return p.distinct }

// AllRequested reports whether All(true) was called, whether or not it
// takes effect.
func (p *Projection) AllRequested() bool { return p.all }

// IsAll reports whether the projection renders as "*".
func (p *Projection) IsAll() bool { return len(p.elements) == 0 }

// Size returns the number of explicit elements.
func (p *Projection) Size() int { return len(p.elements) }

// Render implements QueryElement.
func (p *Projection) Render() string {
	out := "SELECT "
	if p.distinct {
		out += "DISTINCT "
	}
	if p.IsAll() {
		return out + "*"
	}
	return out + joinElements(p.elements, " ")
}
