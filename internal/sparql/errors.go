package sparql

import (
	"errors"
	"fmt"
)

// InvalidPatternError reports a triple pattern that violates a construction
// invariant. It is returned where the pattern is built; an invalid pattern
// never reaches rendering.
type InvalidPatternError struct {
	// Subject and Predicate are the rendered terms of the rejected pattern.
	Subject   string
	Predicate string

	// Reason is a human-readable description of the violation.
	Reason string
}

// Error implements the error interface.
func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid triple pattern %s %s: %s", e.Subject, e.Predicate, e.Reason)
}

// IsInvalidPatternError returns true if err is or wraps an InvalidPatternError.
func IsInvalidPatternError(err error) bool {
	var pe *InvalidPatternError
	return errors.As(err, &pe)
}

// InvalidExpressionError reports an operator applied with the wrong arity.
// Like InvalidPatternError it is returned where the expression is built.
type InvalidExpressionError struct {
	Operator string
	Reason   string
}

// Error implements the error interface.
func (e *InvalidExpressionError) Error() string {
	return fmt.Sprintf("invalid expression with operator %s: %s", e.Operator, e.Reason)
}

// IsInvalidExpressionError returns true if err is or wraps an InvalidExpressionError.
func IsInvalidExpressionError(err error) bool {
	var ee *InvalidExpressionError
	return errors.As(err, &ee)
}
