// Package sparql builds SPARQL queries from typed, chainable elements and
// renders them as query text.
//
// Every element implements QueryElement. Render returns a compact one-line
// form; elements that also implement PrettyElement render an indented
// multi-line form. Slots in the grammar are typed by sealed capability
// interfaces (Subject, Predicate, Object, Projectable, Groupable, Orderable,
// Operand, GraphPattern), so only legal fillers compile.
//
//	ex := sparql.NewPrefix("ex", sparql.NewIRI("http://example.org/"))
//	x := sparql.Var("x")
//	q := sparql.NewSelectQuery().
//		Prefix(ex).
//		Select(x).
//		Where(x.IsA(ex.IRI("Thing")))
//	q.Render() // PREFIX ex: <http://example.org/> SELECT ?x WHERE { ?x a ex:Thing . }
//
// A query always renders its parts in the same order no matter how it was
// built: PREFIX and BASE, the query form, FROM, WHERE, GROUP BY, HAVING,
// ORDER BY, LIMIT and OFFSET. Empty parts render nothing.
//
// Builders are not safe for concurrent mutation. The package only writes
// query text; it never parses it.
package sparql
