package sparql

// Assignment binds the value of an expression to a variable: (expr AS ?v).
// It appears in SELECT lists and GROUP BY clauses.
type Assignment struct {
	expression Assignable
	variable   Variable
}

// Expression returns the assigned expression.
func (a *Assignment) Expression() Assignable { return a.expression }

// Variable returns the target variable.
func (a *Assignment) Variable() Variable { return a.variable }

// Render implements QueryElement.
func (a *Assignment) Render() string {
	return parenthesized(a.expression.Render() + " AS " + a.variable.Render())
}

func (*Assignment) projectable() {}
func (*Assignment) groupable()   {}
