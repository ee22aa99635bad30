package queryir

// Form is the query form of a top-level query.
type Form string

// Query forms.
const (
	FormSelect    Form = "select"
	FormConstruct Form = "construct"
	FormAsk       Form = "ask"
	FormDescribe  Form = "describe"
)

// IsValid reports whether f names a known form. The empty form defaults to
// select and is valid.
func (f Form) IsValid() bool {
	switch f {
	case "", FormSelect, FormConstruct, FormAsk, FormDescribe:
		return true
	}
	return false
}

// Normalized returns f with the empty form mapped to FormSelect.
func (f Form) Normalized() Form {
	if f == "" {
		return FormSelect
	}
	return f
}

// Document is a file of named queries.
type Document struct {
	Queries []Query `yaml:"queries" json:"queries"`
}

// Lookup returns the query with the given name.
func (d *Document) Lookup(name string) (*Query, bool) {
	for i := range d.Queries {
		if d.Queries[i].Name == name {
			return &d.Queries[i], true
		}
	}
	return nil, false
}

// Names returns the query names in document order.
func (d *Document) Names() []string {
	names := make([]string, len(d.Queries))
	for i, q := range d.Queries {
		names[i] = q.Name
	}
	return names
}

// Query is one named top-level query.
type Query struct {
	// Name identifies the query within its document.
	Name string `yaml:"name" json:"name"`

	// Description is free text carried into the catalog.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	Form      Form     `yaml:"form,omitempty" json:"form,omitempty"`
	Base      string   `yaml:"base,omitempty" json:"base,omitempty"`
	Prefixes  []Prefix `yaml:"prefixes,omitempty" json:"prefixes,omitempty"`
	From      []string `yaml:"from,omitempty" json:"from,omitempty"`
	FromNamed []string `yaml:"from_named,omitempty" json:"from_named,omitempty"`

	// Template holds the CONSTRUCT triples. Construct queries only.
	Template []Triple `yaml:"template,omitempty" json:"template,omitempty"`

	// Describe lists the resources of a DESCRIBE query. Empty means "*".
	Describe []Term `yaml:"describe,omitempty" json:"describe,omitempty"`

	Body `yaml:",inline"`
}

// Body is the part a top-level query shares with an inline sub-select.
type Body struct {
	Distinct bool         `yaml:"distinct,omitempty" json:"distinct,omitempty"`
	Select   []Projection `yaml:"select,omitempty" json:"select,omitempty"`
	Where    []Pattern    `yaml:"where,omitempty" json:"where,omitempty"`
	GroupBy  []Projection `yaml:"group_by,omitempty" json:"group_by,omitempty"`
	Having   []Expr       `yaml:"having,omitempty" json:"having,omitempty"`
	OrderBy  []Order      `yaml:"order_by,omitempty" json:"order_by,omitempty"`

	// Limit and Offset are omitted when nil.
	Limit  *int `yaml:"limit,omitempty" json:"limit,omitempty"`
	Offset *int `yaml:"offset,omitempty" json:"offset,omitempty"`
}

// Prefix declares a namespace alias.
type Prefix struct {
	Alias string `yaml:"alias" json:"alias"`
	IRI   string `yaml:"iri" json:"iri"`
}

// TermKind tells how a Term was written.
type TermKind int

const (
	// TermToken is a string token such as "?x" or "ex:Thing".
	TermToken TermKind = iota
	TermInteger
	TermDecimal
	TermBoolean
)

// Term is one RDF term. Text holds the token, or the lexical form of a
// number or boolean.
type Term struct {
	Kind TermKind
	Text string
}

// Token returns a token term.
func Token(s string) Term { return Term{Kind: TermToken, Text: s} }

// Triple is a subject with one or more predicate-object lists:
//
//	{s: "?x", p: "a", o: ["ex:Thing"], also: [{p: "ex:name", o: "?n"}]}
type Triple struct {
	S    Term              `yaml:"s" json:"s"`
	P    Term              `yaml:"p" json:"p"`
	O    TermList          `yaml:"o" json:"o"`
	Also []PredicateObject `yaml:"also,omitempty" json:"also,omitempty"`
}

// PredicateObject is an extra predicate-object list of a Triple.
type PredicateObject struct {
	P Term     `yaml:"p" json:"p"`
	O TermList `yaml:"o" json:"o"`
}

// TermList is a list of terms. A single scalar decodes as a one-element
// list.
type TermList []Term

// PatternKind identifies which field of a Pattern is set.
type PatternKind string

// Pattern kinds.
const (
	PatternTriple    PatternKind = "triple"
	PatternGroup     PatternKind = "group"
	PatternOptional  PatternKind = "optional"
	PatternMinus     PatternKind = "minus"
	PatternGraph     PatternKind = "graph"
	PatternUnion     PatternKind = "union"
	PatternFilter    PatternKind = "filter"
	PatternBind      PatternKind = "bind"
	PatternSubquery  PatternKind = "subquery"
	PatternSubselect PatternKind = "subselect"
)

// Pattern is one WHERE element. Exactly one field is set.
type Pattern struct {
	Triple    *Triple       `yaml:"triple,omitempty" json:"triple,omitempty"`
	Group     []Pattern     `yaml:"group,omitempty" json:"group,omitempty"`
	Optional  []Pattern     `yaml:"optional,omitempty" json:"optional,omitempty"`
	Minus     []Pattern     `yaml:"minus,omitempty" json:"minus,omitempty"`
	Graph     *GraphPattern `yaml:"graph,omitempty" json:"graph,omitempty"`
	Union     [][]Pattern   `yaml:"union,omitempty" json:"union,omitempty"`
	Filter    *Expr         `yaml:"filter,omitempty" json:"filter,omitempty"`
	Bind      *Bind         `yaml:"bind,omitempty" json:"bind,omitempty"`
	Subquery  string        `yaml:"subquery,omitempty" json:"subquery,omitempty"`
	Subselect *Body         `yaml:"subselect,omitempty" json:"subselect,omitempty"`
}

// Kinds returns the kinds of every field set on p, in declaration order.
// A well-formed pattern has exactly one.
func (p Pattern) Kinds() []PatternKind {
	var kinds []PatternKind
	if p.Triple != nil {
		kinds = append(kinds, PatternTriple)
	}
	if p.Group != nil {
		kinds = append(kinds, PatternGroup)
	}
	if p.Optional != nil {
		kinds = append(kinds, PatternOptional)
	}
	if p.Minus != nil {
		kinds = append(kinds, PatternMinus)
	}
	if p.Graph != nil {
		kinds = append(kinds, PatternGraph)
	}
	if p.Union != nil {
		kinds = append(kinds, PatternUnion)
	}
	if p.Filter != nil {
		kinds = append(kinds, PatternFilter)
	}
	if p.Bind != nil {
		kinds = append(kinds, PatternBind)
	}
	if p.Subquery != "" {
		kinds = append(kinds, PatternSubquery)
	}
	if p.Subselect != nil {
		kinds = append(kinds, PatternSubselect)
	}
	return kinds
}

// Kind returns the single kind of p, or "" when zero or several fields
// are set.
func (p Pattern) Kind() PatternKind {
	kinds := p.Kinds()
	if len(kinds) != 1 {
		return ""
	}
	return kinds[0]
}

// GraphPattern is GRAPH name { patterns }.
type GraphPattern struct {
	Name     Term      `yaml:"name" json:"name"`
	Patterns []Pattern `yaml:"patterns" json:"patterns"`
}

// Bind is BIND(expr AS ?var), also used for projected assignments.
type Bind struct {
	Expr Expr   `yaml:"expr" json:"expr"`
	As   string `yaml:"as" json:"as"`
}

// Expr is a term, an operator application (Op) or a function call (Fn).
type Expr struct {
	Term *Term

	Op   string
	Fn   string
	Args []Expr

	// Distinct and Star apply to aggregate calls; Separator to GROUP_CONCAT.
	Distinct  bool
	Star      bool
	Separator *string
}

// Projection is a SELECT or GROUP BY item: an expression, optionally bound
// to a variable with As.
type Projection struct {
	Expr Expr
	As   string
}

// Order is one ORDER BY key. Direction is "", "asc" or "desc".
type Order struct {
	Expr      Expr
	Direction string
}

// Order directions.
const (
	Ascending  = "asc"
	Descending = "desc"
)
