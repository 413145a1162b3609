// Package prim implements the pure double-precision math primitives
// (vectors, matrices, color) that the rest of raycore builds on.
package prim

import "fmt"

// NumericError reports a math operation that has no well-defined result:
// normalizing a zero-length vector, or inverting a singular matrix.
type NumericError struct {
	Op  string
	Msg string
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("prim: %s: %s", e.Op, e.Msg)
}

func numericErrorf(op, format string, args ...any) error {
	return &NumericError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
