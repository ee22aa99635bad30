package sparql

import (
	"strings"

	"github.com/roach88/spanqit/internal/rdf"
)

type expressionKind int

const (
	infixExpression expressionKind = iota
	unaryExpression
	callExpression
)

// Expression is an operator application or a function call. Expressions
// nest: an operator expression used as an operand of another operator is
// parenthesized when rendered.
type Expression struct {
	kind      expressionKind
	op        Operator
	function  string
	distinct  bool
	star      bool
	separator *string
	args      []Operand
}

func infix(op Operator, args ...Operand) *Expression {
	return &Expression{kind: infixExpression, op: op, args: args}
}

func unary(op Operator, arg Operand) *Expression {
	return &Expression{kind: unaryExpression, op: op, args: []Operand{arg}}
}

// Binary applies a binary operator to two operands. A unary operator is
// rejected with an InvalidExpressionError; use Unary for those.
func Binary(op Operator, left, right Operand) (*Expression, error) {
	if op.IsUnary() {
		return nil, &InvalidExpressionError{Operator: op.String(), Reason: "operator is unary, not binary"}
	}
	return infix(op, left, right), nil
}

// Unary applies a unary operator. A binary operator is rejected with an
// InvalidExpressionError.
func Unary(op Operator, arg Operand) (*Expression, error) {
	if !op.IsUnary() {
		return nil, &InvalidExpressionError{Operator: op.String(), Reason: "operator is binary, not unary"}
	}
	return unary(op, arg), nil
}

// Equal returns left = right.
func Equal(left, right Operand) *Expression { return infix(OpEqual, left, right) }

// NotEqual returns left != right.
func NotEqual(left, right Operand) *Expression { return infix(OpNotEqual, left, right) }

// LessThan returns left < right.
func LessThan(left, right Operand) *Expression { return infix(OpLessThan, left, right) }

// LessThanOrEqual returns left <= right.
func LessThanOrEqual(left, right Operand) *Expression {
	return infix(OpLessThanOrEqual, left, right)
}

// GreaterThan returns left > right.
func GreaterThan(left, right Operand) *Expression {
	return infix(OpGreaterThan, left, right)
}

// GreaterThanOrEqual returns left >= right.
func GreaterThanOrEqual(left, right Operand) *Expression {
	return infix(OpGreaterThanOrEqual, left, right)
}

// Add returns left + right.
func Add(left, right Operand) *Expression { return infix(OpAdd, left, right) }

// Subtract returns left - right.
func Subtract(left, right Operand) *Expression { return infix(OpSubtract, left, right) }

// Multiply returns left * right.
func Multiply(left, right Operand) *Expression { return infix(OpMultiply, left, right) }

// Divide returns left / right.
func Divide(left, right Operand) *Expression { return infix(OpDivide, left, right) }

// And joins operands with &&. A single operand renders unchanged and no
// operands render true.
func And(operands ...Operand) *Expression { return infix(OpAnd, operands...) }

// Or joins operands with ||. No operands render false.
func Or(operands ...Operand) *Expression { return infix(OpOr, operands...) }

// Not returns !arg.
func Not(arg Operand) *Expression { return unary(OpNot, arg) }

// Negate returns -arg.
func Negate(arg Operand) *Expression { return unary(OpNegate, arg) }

// Call applies a built-in function or aggregate by name, e.g. Call("STRLEN", v).
func Call(function string, args ...Operand) *Expression {
	return &Expression{kind: callExpression, function: strings.ToUpper(function), args: args}
}

// CallIRI applies an extension function identified by an IRI.
func CallIRI(function IRI, args ...Operand) *Expression {
	return &Expression{kind: callExpression, function: function.Render(), args: args}
}

// Count returns the COUNT aggregate.
func Count(arg Operand) *Expression { return Call("COUNT", arg) }

// Sum returns the SUM aggregate.
func Sum(arg Operand) *Expression { return Call("SUM", arg) }

// Avg returns the AVG aggregate.
func Avg(arg Operand) *Expression { return Call("AVG", arg) }

// Min returns the MIN aggregate.
func Min(arg Operand) *Expression { return Call("MIN", arg) }

// Max returns the MAX aggregate.
func Max(arg Operand) *Expression { return Call("MAX", arg) }

// Sample returns the SAMPLE aggregate.
func Sample(arg Operand) *Expression { return Call("SAMPLE", arg) }

// CountAll returns COUNT(*).
func CountAll() *Expression {
	return &Expression{kind: callExpression, function: "COUNT", star: true}
}

// GroupConcat returns GROUP_CONCAT(arg ; SEPARATOR="sep").
func GroupConcat(arg Operand, separator string) *Expression {
	e := Call("GROUP_CONCAT", arg)
	e.separator = &separator
	return e
}

// Bound returns BOUND(?v).
func Bound(v Variable) *Expression { return Call("BOUND", v) }

// Str returns STR(arg).
func Str(arg Operand) *Expression { return Call("STR", arg) }

// Lang returns LANG(arg).
func Lang(arg Operand) *Expression { return Call("LANG", arg) }

// Datatype returns DATATYPE(arg).
func Datatype(arg Operand) *Expression { return Call("DATATYPE", arg) }

// IsIRI returns isIRI(arg).
func IsIRI(arg Operand) *Expression { return Call("isIRI", arg) }

// IsLiteral returns isLiteral(arg).
func IsLiteral(arg Operand) *Expression { return Call("isLiteral", arg) }

// Contains returns CONTAINS(s, sub).
func Contains(s, sub Operand) *Expression { return Call("CONTAINS", s, sub) }

// Regex returns REGEX(text, pattern) or REGEX(text, pattern, "flags").
func Regex(text Operand, pattern string, flags ...string) *Expression {
	args := []Operand{text, StringLiteral(pattern)}
	if len(flags) > 0 {
		args = append(args, StringLiteral(strings.Join(flags, "")))
	}
	return Call("REGEX", args...)
}

// Distinct marks an aggregate call as DISTINCT. It has no effect on
// operator expressions.
func (e *Expression) Distinct() *Expression {
	if e.kind == callExpression {
		e.distinct = true
	}
	return e
}

// Render implements QueryElement.
func (e *Expression) Render() string {
	switch e.kind {
	case unaryExpression:
		return e.op.String() + operandText(e.args[0])
	case callExpression:
		return e.renderCall()
	default:
		switch len(e.args) {
		case 0:
			return e.identity()
		case 1:
			return e.args[0].Render()
		}
		parts := make([]string, len(e.args))
		for i, a := range e.args {
			parts[i] = operandText(a)
		}
		return strings.Join(parts, " "+e.op.String()+" ")
	}
}

// identity is the value of a connective with no operands.
func (e *Expression) identity() string {
	if e.op == OpOr {
		return "false"
	}
	return "true"
}

func (e *Expression) renderCall() string {
	var b strings.Builder
	b.WriteString(e.function)
	b.WriteString("(")
	if e.distinct {
		b.WriteString("DISTINCT ")
	}
	if e.star {
		b.WriteString("*")
	} else {
		b.WriteString(joinElements(e.args, ", "))
	}
	if e.separator != nil {
		b.WriteString(" ; SEPARATOR=")
		b.WriteString(rdf.QuoteString(*e.separator))
	}
	b.WriteString(")")
	return b.String()
}

// operandText renders an operand, wrapping nested operator expressions.
func operandText(o Operand) string {
	if e, ok := o.(*Expression); ok && e.kind != callExpression {
		if e.kind == infixExpression && len(e.args) == 0 {
			return e.identity()
		}
		if e.kind == infixExpression && len(e.args) == 1 {
			return operandText(e.args[0])
		}
		return parenthesized(e.Render())
	}
	return o.Render()
}

func (*Expression) operand()   {}
func (*Expression) groupable() {}
func (*Expression) orderable() {}
