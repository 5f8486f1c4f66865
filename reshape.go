// reshape.go — moving a payload between variant lists.
//
// All operations are pass-through for a nil union and never copy the
// payload: the interface holding it moves into the new union and only the
// tag is recomputed from a cached plan (see typeset.go). The source union is
// left intact; unions are immutable values.
package xgxunion

// Widen re-types u to a superset list To. The order of To is arbitrary.
// A To that lacks one of From's types is a contract violation, reported on
// first use even when u is nil.
//
//	var u *Union[Of1[*os.PathError]] = Lift(pathErr)
//	w := Widen[Of2[StrError, *os.PathError]](u)
func Widen[To, From Variants](u *Union[From]) *Union[To] {
	plan := widenPlan[To, From]()
	if u == nil {
		return nil
	}
	return &Union[To]{tag: plan[u.tag], value: u.value}
}

// Narrow peels T off u. When T is the live variant it returns (v, nil, true);
// otherwise it returns the payload repacked into Rest, which must hold
// exactly the types of L other than T (in any order).
//
// On a single-variant union the remainder is empty: pass None as Rest. That
// narrow is degenerate; prefer IntoInner.
func Narrow[T any, Rest, L Variants](u *Union[L]) (T, *Union[Rest], bool) {
	var zero T
	plan := planSplit[Of1[T], Rest, L]("Narrow")
	if u == nil {
		return zero, nil, false
	}
	if plan.picked[u.tag] >= 0 {
		return payload[T](u.value), nil, true
	}
	return zero, &Union[Rest]{tag: plan.rest[u.tag], value: u.value}, false
}

// Subset splits u by a sub-list Sub of L: the first result is non-nil when
// the live variant belongs to Sub, the second holds the payload repacked into
// Rest (L minus Sub, any order) otherwise.
func Subset[Sub, Rest, L Variants](u *Union[L]) (*Union[Sub], *Union[Rest]) {
	plan := planSplit[Sub, Rest, L]("Subset")
	if u == nil {
		return nil, nil
	}
	if i := plan.picked[u.tag]; i >= 0 {
		return &Union[Sub]{tag: i, value: u.value}, nil
	}
	return nil, &Union[Rest]{tag: plan.rest[u.tag], value: u.value}
}

// IntoInner unwraps a single-variant union to its value. The one-element
// list is enforced by the signature.
func IntoInner[A any](u *Union[Of1[A]]) A {
	if u == nil {
		var zero A
		return zero
	}
	return payload[A](u.value)
}
