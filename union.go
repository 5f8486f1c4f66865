// union.go — the open sum container.
//
// A *Union[L] holds exactly one payload whose type is one of the types of
// the variant list L, together with the tag (its index in L). The payload is
// stored once behind an interface and moves between unions untouched;
// reshaping only recomputes the tag.
//
// A nil *Union is the success value: every conversion maps nil to nil.
package xgxunion

import "reflect"

// Union is an open sum over the variant list L (Of1 … Of9).
//
// Construct one with Lift (single error) or New (any member of L), reshape
// it with Widen, Narrow and Subset, and take it apart with IntoInner, Inner,
// the Match helpers, or a type switch on Value.
type Union[L Variants] struct {
	tag   int
	value any
}

// unionValue is implemented by every *Union instantiation.
type unionValue interface {
	error
	Tag() int
	Value() any
}

var _ unionValue = (*Union[Of1[error]])(nil)

// New builds a union over L holding v. T must be one of L's types;
// anything else is a contract violation.
func New[L Variants, T any](v T) *Union[L] {
	set := setOf[L]()
	idx := set.indexOf(reflect.TypeFor[T]())
	if idx < 0 {
		panic(violation(1, "New", "%s is not a variant of %s", reflect.TypeFor[T](), set))
	}
	return &Union[L]{tag: idx, value: v}
}

// Lift wraps a single error as a one-variant union. A nil e (including a
// typed nil) yields nil.
//
// Lift is the single-type entry point: lifting a union is a contract
// violation, whether E names a union type or an interface E holds one at
// run time; use Widen for that.
func Lift[E any](e E) *Union[Of1[E]] {
	var zero E
	if _, ok := any(zero).(unionValue); ok {
		panic(violation(1, "Lift", "%T is already a union; use Widen", zero))
	}
	if isNil(e) {
		return nil
	}
	if _, ok := any(e).(unionValue); ok {
		panic(violation(1, "Lift", "%T is already a union; use Widen", e))
	}
	setOf[Of1[E]]()
	return &Union[Of1[E]]{tag: 0, value: e}
}

// Tag returns the index in L of the payload's type, or -1 for a nil union.
func (u *Union[L]) Tag() int {
	if u == nil {
		return -1
	}
	return u.tag
}

// Value returns the payload for use in a type switch. For interface-typed
// variants prefer Get or the Match helpers, which dispatch on the tag.
func (u *Union[L]) Value() any {
	if u == nil {
		return nil
	}
	return u.value
}

// Arity reports the number of variants in L.
func (u *Union[L]) Arity() int {
	return len(setOf[L]().types)
}

// Types returns L's variant types in order.
func (u *Union[L]) Types() []reflect.Type {
	types := setOf[L]().types
	out := make([]reflect.Type, len(types))
	copy(out, types)
	return out
}

// Error renders the payload: its Error() if it is an error, fmt's %v
// otherwise.
func (u *Union[L]) Error() string {
	if u == nil {
		return "<nil>"
	}
	return render(u.value)
}

// Unwrap exposes an error payload to errors.Is / errors.As.
func (u *Union[L]) Unwrap() error {
	if u == nil {
		return nil
	}
	if err, ok := u.value.(error); ok {
		return err
	}
	return nil
}

// Inner returns the payload of a single-variant union. Calling it on a
// union with more variants is a contract violation; IntoInner enforces the
// arity at compile time instead.
func (u *Union[L]) Inner() any {
	set := setOf[L]()
	if n := len(set.types); n != 1 {
		panic(violation(1, "Inner", "union over %s has %d variants", set, n))
	}
	if u == nil {
		return nil
	}
	return u.value
}

// Collapse turns the union into one type-erased traced error for uniform
// reporting. A traced payload keeps its context and capture; an untraced
// error is traced here; a non-error payload is rendered into a StrError, and
// so is a nil payload (including a typed nil error).
func (u *Union[L]) Collapse() *Dyn {
	if u == nil {
		return nil
	}
	if isNil(u.value) {
		return traceAs[error](StrError("<nil>"), 1)
	}
	switch v := u.value.(type) {
	case error:
		return traceAs(v, 1)
	default:
		return traceAs[error](StrError(render(v)), 1)
	}
}

// Get returns the payload as T when T is the live variant. T must be one of
// L's types.
func Get[T any, L Variants](u *Union[L]) (T, bool) {
	var zero T
	set := setOf[L]()
	idx := set.indexOf(reflect.TypeFor[T]())
	if idx < 0 {
		panic(violation(1, "Get", "%s is not a variant of %s", reflect.TypeFor[T](), set))
	}
	if u == nil || u.tag != idx {
		return zero, false
	}
	return payload[T](u.value), true
}

// Is reports whether T is the live variant.
func Is[T any, L Variants](u *Union[L]) bool {
	_, ok := Get[T](u)
	return ok
}

// payload asserts v to T. A nil payload of an interface variant yields T's
// zero value.
func payload[T any](v any) T {
	t, _ := v.(T)
	return t
}
