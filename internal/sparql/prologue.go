package sparql

// Prefix declares a namespace alias: PREFIX ex: <http://example.org/>.
// Prefix is a comparable value; two prefixes are equal when both alias and
// IRI match.
type Prefix struct {
	alias string
	iri   IRI
}

// Alias returns the declared alias without the trailing colon.
func (p Prefix) Alias() string { return p.alias }

// Namespace returns the namespace IRI.
func (p Prefix) Namespace() IRI { return p.iri }

// IRI returns the prefixed name alias:local for this namespace.
func (p Prefix) IRI(local string) IRI {
	return PrefixedName(p.alias, local)
}

// Render implements QueryElement.
func (p Prefix) Render() string {
	return "PREFIX " + p.alias + ": " + p.iri.Render()
}

// Base declares the base IRI for relative references. A zero Base renders "".
type Base struct {
	iri IRI
}

// IsEmpty reports whether no base IRI is set.
func (b Base) IsEmpty() bool { return b.iri.IsZero() }

// Render implements QueryElement.
func (b Base) Render() string {
	if b.IsEmpty() {
		return ""
	}
	return "BASE " + b.iri.Render()
}

// PrefixDeclarations is the ordered, duplicate-free set of PREFIX lines of a
// query prologue.
type PrefixDeclarations struct {
	prefixes []Prefix
	seen     map[Prefix]struct{}
}

// Add appends prefixes in order. A prefix equal to one already declared is
// ignored.
func (d *PrefixDeclarations) Add(prefixes ...Prefix) *PrefixDeclarations {
	if d.seen == nil {
		d.seen = make(map[Prefix]struct{})
	}
	for _, p := range prefixes {
		if _, dup := d.seen[p]; dup {
			continue
		}
		d.seen[p] = struct{}{}
		d.prefixes = append(d.prefixes, p)
	}
	return d
}

// Size returns the number of distinct declarations.
func (d *PrefixDeclarations) Size() int { return len(d.prefixes) }

// IsEmpty reports whether nothing is declared.
func (d *PrefixDeclarations) IsEmpty() bool { return len(d.prefixes) == 0 }

// Render implements QueryElement.
func (d *PrefixDeclarations) Render() string {
	return joinElements(d.prefixes, " ")
}

// RenderPretty puts each declaration on its own line.
func (d *PrefixDeclarations) RenderPretty(indent int) string {
	return joinElements(d.prefixes, "\n"+indentation(indent))
}
