package sparql

// Operator is a SPARQL expression operator.
type Operator int

const (
	OpEqual Operator = iota
	OpNotEqual
	OpLessThan
	OpLessThanOrEqual
	OpGreaterThan
	OpGreaterThanOrEqual
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpAnd
	OpOr
	OpNot
	OpNegate
)

var operatorSymbols = [...]string{
	OpEqual:              "=",
	OpNotEqual:           "!=",
	OpLessThan:           "<",
	OpLessThanOrEqual:    "<=",
	OpGreaterThan:        ">",
	OpGreaterThanOrEqual: ">=",
	OpAdd:                "+",
	OpSubtract:           "-",
	OpMultiply:           "*",
	OpDivide:             "/",
	OpAnd:                "&&",
	OpOr:                 "||",
	OpNot:                "!",
	OpNegate:             "-",
}

// String returns the operator symbol.
func (o Operator) String() string {
	if o < 0 || int(o) >= len(operatorSymbols) {
		return "?"
	}
	return operatorSymbols[o]
}

// IsUnary reports whether o takes a single operand.
func (o Operator) IsUnary() bool {
	return o == OpNot || o == OpNegate
}

// IsConnective reports whether o is a logical connective that accepts any
// number of operands.
func (o Operator) IsConnective() bool {
	return o == OpAnd || o == OpOr
}

// ParseBinaryOperator returns the binary operator written as symbol.
// "-" is subtraction here; see ParseUnaryOperator for negation.
func ParseBinaryOperator(symbol string) (Operator, bool) {
	for op := OpEqual; op <= OpOr; op++ {
		if operatorSymbols[op] == symbol {
			return op, true
		}
	}
	return 0, false
}

// ParseUnaryOperator returns the unary operator written as symbol.
func ParseUnaryOperator(symbol string) (Operator, bool) {
	switch symbol {
	case "!":
		return OpNot, true
	case "-":
		return OpNegate, true
	}
	return 0, false
}
