// wrap.go — entry points that turn an error into a traced error.
//
// Purpose
//   - Trace / TraceDyn: wrap once, capturing at the call site.
//   - Context / WithContext: annotate any error, tracing it on the way.
//
// Merging
//   A value that already carries the tracer capability is never wrapped a
//   second time. Its context chain and capture move into the result; no new
//   capture is taken, so the trace keeps pointing at the original failure.
//
// Nil handling
//   A nil err and a typed nil (a nil *Traced returned as error) are both the
//   success value: every entry point returns nil for them.
package xgxunion

import "reflect"

// Trace wraps err in a typed traced error, capturing a stack at the caller
// when capture is enabled. A nil err yields nil.
//
// If err is already traced it is merged rather than nested: a *Traced[E] is
// returned as is, and a wrapper over another cause type is re-typed to E
// when its cause satisfies E. Tracing a wrapper whose cause cannot be
// re-typed (E itself names a traced type) is a contract violation.
func Trace[E error](err E) *Traced[E] {
	if isNil(err) {
		return nil
	}
	return traceAs(err, 1)
}

// TraceDyn wraps err in a type-erased traced error. Already traced errors
// are merged: their context and capture carry over unchanged.
func TraceDyn(err error) *Dyn {
	if isNil(err) {
		return nil
	}
	return traceAs(err, 1)
}

// traceAs does the work for Trace and TraceDyn; skip=0 captures at the
// caller of traceAs. A nil or typed-nil err yields nil.
func traceAs[E error](err E, skip int) *Traced[E] {
	if isNil(err) {
		return nil
	}
	if tr, ok := any(err).(tracer); ok {
		if same, ok := tr.(*Traced[E]); ok {
			return same
		}
		if cause, ok := tr.tracedCause().(E); ok {
			return &Traced[E]{cause: cause, rec: tr.tracedRecord()}
		}
		panic(violation(skip+1, "Trace", "%T is already traced; its cause %T is not a %s",
			err, tr.tracedCause(), reflect.TypeFor[E]()))
	}
	return &Traced[E]{cause: err, rec: captureRecord(skip + 1)}
}

// Context traces err (merging if already traced) and appends msg.
// A nil err yields nil.
func Context(err error, msg string) *Dyn {
	if isNil(err) {
		return nil
	}
	return traceAs(err, 1).Context(msg)
}

// WithContext traces err and appends the message produced by fn. fn is
// evaluated only on the error path.
func WithContext(err error, fn func() string) *Dyn {
	if isNil(err) {
		return nil
	}
	return traceAs(err, 1).WithContext(fn)
}

// isNil reports whether v is nil or a typed nil (pointer, map, slice, func,
// chan or interface holding nil).
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
