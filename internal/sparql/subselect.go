package sparql

// SubSelect is a SELECT nested in a WHERE clause. It shares WHERE and the
// solution modifiers with top-level queries but has no prologue or
// dataset, so PREFIX and FROM can never appear inside it.
type SubSelect struct {
	queryCore[*SubSelect]
	projection *Projection
}

// NewSubSelect returns an empty sub-select.
func NewSubSelect() *SubSelect {
	s := &SubSelect{projection: &Projection{}}
	s.setup(s)
	return s
}

// Select appends projected elements.
func (s *SubSelect) Select(elements ...Projectable) *SubSelect {
	s.projection.Select(elements...)
	return s
}

// WithProjection replaces the projection.
func (s *SubSelect) WithProjection(p *Projection) *SubSelect {
	if p != nil {
		s.projection = p
	}
	return s
}

// Distinct sets SELECT DISTINCT.
func (s *SubSelect) Distinct(distinct bool) *SubSelect {
	s.projection.Distinct(distinct)
	return s
}

// All requests SELECT *; explicit elements take precedence.
func (s *SubSelect) All(all bool) *SubSelect {
	s.projection.All(all)
	return s
}

// Size returns the number of top-level WHERE patterns.
func (s *SubSelect) Size() int { return s.where.Size() }

// IsEmpty reports whether the WHERE body is empty.
func (s *SubSelect) IsEmpty() bool { return s.where.IsEmpty() }

// Render implements QueryElement. The body is wrapped in braces so the
// sub-select nests as a single group.
func (s *SubSelect) Render() string {
	parts := append([]string{s.projection.Render()}, s.bodyParts(false, 0, false)...)
	return bracketed(joinParts(parts, " "))
}

// RenderPretty implements PrettyElement.
func (s *SubSelect) RenderPretty(indent int) string {
	parts := append([]string{s.projection.Render()}, s.bodyParts(true, indent+1, false)...)
	return "{\n" + indentation(indent+1) + joinParts(parts, "\n"+indentation(indent+1)) + "\n" + indentation(indent) + "}"
}

func (*SubSelect) graphPattern() {}
