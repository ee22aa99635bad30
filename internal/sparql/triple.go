package sparql

// TriplePattern is a subject with one or more predicate-object lists:
//
//	?x a ex:Thing ; ex:name ?n, ?alias .
//
// Every object list holds at least one object.
type TriplePattern struct {
	subject Subject
	lists   []predicateObjects
}

// NewTriplePattern builds a triple pattern from a subject, a predicate and
// its objects. It returns an *InvalidPatternError when objects is empty.
func NewTriplePattern(s Subject, p Predicate, objects ...Object) (*TriplePattern, error) {
	if len(objects) == 0 {
		return nil, &InvalidPatternError{
			Subject:   s.Render(),
			Predicate: p.Render(),
			Reason:    "at least one object is required",
		}
	}
	return newTriple(s, p, objects[0], objects[1:]), nil
}

func newTriple(s Subject, p Predicate, o Object, more []Object) *TriplePattern {
	return &TriplePattern{
		subject: s,
		lists:   []predicateObjects{{predicate: p, objects: append([]Object{o}, more...)}},
	}
}

// AndHas adds another predicate-object list for the same subject.
func (t *TriplePattern) AndHas(p Predicate, o Object, more ...Object) *TriplePattern {
	t.lists = append(t.lists, predicateObjects{predicate: p, objects: append([]Object{o}, more...)})
	return t
}

// AndIsA adds an rdf:type list for the same subject.
func (t *TriplePattern) AndIsA(o Object, more ...Object) *TriplePattern {
	return t.AndHas(A, o, more...)
}

// IsEmpty is always false; a triple pattern holds at least one triple.
func (t *TriplePattern) IsEmpty() bool { return false }

// Render implements QueryElement.
func (t *TriplePattern) Render() string {
	return t.subject.Render() + " " + renderPredicateObjects(t.lists) + " ."
}

func (*TriplePattern) graphPattern() {}
