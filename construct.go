// construct.go — concrete error values owned by the package.
//
// Scope:
//   - StrError: a message-only error, handy as a distinct variant type and
//     as the rendering of non-error union payloads.
//   - ContractViolation: misuse of the API itself. It is a programming
//     bug, always carries a stack, and is raised with panic; it is never
//     returned as a recoverable result.
package xgxunion

import "fmt"

// StrError is an error that is just a message. It is comparable, so
// errors.Is matches equal messages.
type StrError string

func (e StrError) Error() string { return string(e) }

// ContractViolation reports misuse of the API: duplicate variant types,
// widening to a list that is not a superset, narrowing with a remainder
// list that is not the complement, collapsing a multi-variant union, lifting
// a union with Lift, or tracing a wrapper whose cause cannot be re-typed.
//
// Operations raise it with panic. Recover it only in tests or at a process
// boundary that reports defects.
type ContractViolation struct {
	Op  string // operation that detected the violation
	Msg string
	stk Stack
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("xgxunion: contract violation in %s: %s", e.Op, e.Msg)
}

// Stack returns the stack captured where the violation was detected.
func (e *ContractViolation) Stack() Stack { return e.stk }

// violation builds a ContractViolation. skip selects the first recorded
// frame: 0 is the function calling violation, 1 its caller, and so on.
// Call sites pass the depth that lands on the code outside the package
// that invoked the public operation.
func violation(skip int, op, format string, args ...any) *ContractViolation {
	return &ContractViolation{
		Op:  op,
		Msg: fmt.Sprintf(format, args...),
		stk: captureStackAlways(skip + 1),
	}
}
