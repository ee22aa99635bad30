package querysparql

import (
	"errors"
	"fmt"
)

// CompileError reports a query document element that cannot be turned into
// a SPARQL builder.
type CompileError struct {
	// Query is the name of the query being compiled.
	Query string

	// Path locates the element, e.g. "where[1].triple.o[0]".
	Path string

	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Path == "" {
		return fmt.Sprintf("query %s: %s", e.Query, msg)
	}
	return fmt.Sprintf("query %s: %s: %s", e.Query, e.Path, msg)
}

// Unwrap returns the underlying cause.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// IsCompileError returns true if err is or wraps a CompileError.
func IsCompileError(err error) bool {
	var ce *CompileError
	return errors.As(err, &ce)
}
