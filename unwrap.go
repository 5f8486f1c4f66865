// unwrap.go — traversal over single- and multi-wrapped errors.
//
// Design notes:
//   - errors.Join returns an error with Unwrap() []error; errors.Unwrap only
//     calls Unwrap() error, so traversal must handle BOTH forms.
//   - map[error] cannot serve as a blanket "seen" set: interface values
//     whose dynamic type is not comparable panic as map keys. We guard with
//     seenErr for comparable dynamics and seenPtr (pointer identity) for the
//     rest; anything else is treated as acyclic and bounded by depth.
package xgxunion

import (
	"errors"
	"reflect"
)

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

const maxWalkDepth = 1 << 12

type seenSet struct {
	errs map[error]struct{}
	ptrs map[uintptr]struct{}
}

// mark returns true if err was newly marked, false if already seen.
func (s *seenSet) mark(err error) bool {
	if err == nil {
		return false
	}
	rt := reflect.TypeOf(err)
	if rt.Comparable() {
		if _, ok := s.errs[err]; ok {
			return false
		}
		s.errs[err] = struct{}{}
		return true
	}
	if rv := reflect.ValueOf(err); rv.Kind() == reflect.Pointer && !rv.IsNil() {
		id := rv.Pointer()
		if _, ok := s.ptrs[id]; ok {
			return false
		}
		s.ptrs[id] = struct{}{}
	}
	return true
}

// Walk visits each distinct node of err's graph depth-first in PRE-ORDER
// (a wrapper before what it wraps). It stops when visit returns false and
// is safe on cycles; nil, including a typed nil, is a no-op.
func Walk(err error, visit func(error) bool) {
	if isNil(err) || visit == nil {
		return
	}
	seen := &seenSet{errs: make(map[error]struct{}, 8), ptrs: make(map[uintptr]struct{}, 8)}
	stack := make([]error, 0, 8)
	stack = append(stack, err)
	seen.mark(err)

	for len(stack) > 0 && len(stack) < maxWalkDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		switch x := cur.(type) {
		case multiUnwrapper:
			kids := x.Unwrap()
			// push in reverse for left-to-right order
			for i := len(kids) - 1; i >= 0; i-- {
				if seen.mark(kids[i]) {
					stack = append(stack, kids[i])
				}
			}
		case singleUnwrapper:
			if u := x.Unwrap(); seen.mark(u) {
				stack = append(stack, u)
			}
		}
	}
}

// Root returns the first leaf of err's graph: the deepest error along the
// first unwrap path. For a traced error or a union this is the root cause.
func Root(err error) error {
	var root error
	Walk(err, func(e error) bool {
		switch x := e.(type) {
		case multiUnwrapper:
			if len(x.Unwrap()) > 0 {
				return true
			}
		case singleUnwrapper:
			if x.Unwrap() != nil {
				return true
			}
		}
		root = e
		return false
	})
	return root
}

// Has reports whether target appears anywhere in err's unwrap graph.
func Has(err, target error) bool {
	if isNil(err) || target == nil {
		return false
	}
	return errors.Is(err, target)
}
