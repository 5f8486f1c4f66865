// predicates.go — stdlib-aligned queries over error chains.
//
// Scope:
//   • Answer "is this traced", "what context was attached", "where was it
//     captured" for any error, including traced errors buried inside
//     fmt.Errorf wrappers, unions or errors.Join trees.
//   • Interop-first: traversal follows both Unwrap() error and
//     Unwrap() []error (see unwrap.go).
package xgxunion

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// stackTracer is the capability pkg/errors attaches to its errors.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// StackTrace exports the capture to pkg/errors-aware tooling.
func (t *Traced[E]) StackTrace() pkgerrors.StackTrace {
	return t.Stack().StackTrace()
}

// IsTraced reports whether err is, or wraps, a traced error.
func IsTraced(err error) bool {
	var tr tracer
	return !isNil(err) && errors.As(err, &tr)
}

// IsContractViolation reports whether err is, or wraps, a ContractViolation.
// Typical use is on a recovered panic value.
func IsContractViolation(err error) bool {
	var cv *ContractViolation
	return err != nil && errors.As(err, &cv)
}

// ContextOf collects the context chains of every traced error in err's
// graph, oldest first: a traced error nested deeper in the chain was
// annotated before the ones wrapping it.
func ContextOf(err error) []string {
	var groups [][]string
	Walk(err, func(e error) bool {
		if tr, ok := e.(tracer); ok {
			if c := tr.tracedRecord().chain(); len(c) > 0 {
				groups = append(groups, c)
			}
		}
		return true
	})
	var out []string
	for i := len(groups) - 1; i >= 0; i-- {
		out = append(out, groups[i]...)
	}
	return out
}

// StackOf returns the capture closest to the failure: the innermost traced
// error's stack, or a stack recorded by github.com/pkg/errors when no traced
// error carries one.
func StackOf(err error) Stack {
	var ours, foreign Stack
	Walk(err, func(e error) bool {
		switch x := e.(type) {
		case tracer:
			if s := x.tracedRecord().stack(); len(s) > 0 {
				ours = s
			}
		case *ContractViolation:
			if x != nil && len(x.stk) > 0 {
				ours = x.stk
			}
		case stackTracer:
			if st := x.StackTrace(); len(st) > 0 {
				foreign = stackFromTrace(st)
			}
		}
		return true
	})
	if ours != nil {
		return ours
	}
	return foreign
}
