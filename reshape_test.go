package xgxunion

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	errA struct{ n int }
	errB struct{ n int }
	errC struct{ n int }
)

func (e *errA) Error() string { return "A" }
func (e *errB) Error() string { return "B" }
func (e *errC) Error() string { return "C" }

func TestWiden_SameListIsIdentity(t *testing.T) {
	t.Parallel()

	a := &errA{}
	u := New[Of2[*errA, *errB]](a)
	w := Widen[Of2[*errA, *errB]](u)
	assert.Equal(t, u.Tag(), w.Tag())
	assert.Same(t, a, w.Value())
}

func TestWiden_ReordersTag(t *testing.T) {
	t.Parallel()

	b := &errB{}
	u := New[Of2[*errA, *errB]](b)
	w := Widen[Of3[*errC, *errB, *errA]](u)
	assert.Equal(t, 1, w.Tag())
	assert.Same(t, b, w.Value())

	a := Widen[Of3[*errC, *errB, *errA]](New[Of2[*errA, *errB]](&errA{}))
	assert.Equal(t, 2, a.Tag())

	// The source is left intact.
	assert.Equal(t, 1, u.Tag())
}

func TestWiden_NilPassesThrough(t *testing.T) {
	t.Parallel()

	var u *Union[Of1[*errA]]
	assert.Nil(t, Widen[Of2[*errB, *errA]](u))
}

func TestWiden_MissingTypeIsViolationEvenForNil(t *testing.T) {
	t.Parallel()

	var u *Union[Of2[*errA, *errB]]
	cv := violationOf(t, func() { _ = Widen[Of2[*errA, *errC]](u) })
	assert.Equal(t, "Widen", cv.Op)
	assert.Contains(t, cv.Msg, "*xgxunion.errB")
}

func TestNarrow_PicksOrRepacks(t *testing.T) {
	t.Parallel()

	type list = Of3[*errA, *errB, *errC]

	b := &errB{n: 7}
	got, rest, ok := Narrow[*errB, Of2[*errC, *errA]](New[list](b))
	require.True(t, ok)
	assert.Nil(t, rest)
	assert.Same(t, b, got)

	c := &errC{}
	got, rest, ok = Narrow[*errB, Of2[*errC, *errA]](New[list](c))
	require.False(t, ok)
	assert.Nil(t, got)
	require.NotNil(t, rest)
	assert.Equal(t, 0, rest.Tag())
	assert.Same(t, c, rest.Value())

	a := &errA{}
	_, rest, _ = Narrow[*errB, Of2[*errC, *errA]](New[list](a))
	assert.Equal(t, 1, rest.Tag())
}

func TestNarrow_NilYieldsNothing(t *testing.T) {
	t.Parallel()

	var u *Union[Of2[*errA, *errB]]
	v, rest, ok := Narrow[*errA, Of1[*errB]](u)
	assert.Nil(t, v)
	assert.Nil(t, rest)
	assert.False(t, ok)
}

func TestNarrow_SingleVariantUsesNone(t *testing.T) {
	t.Parallel()

	a := &errA{}
	v, rest, ok := Narrow[*errA, None](Lift(a))
	assert.True(t, ok)
	assert.Nil(t, rest)
	assert.Same(t, a, v)
}

func TestNarrow_WrongRemainderIsViolation(t *testing.T) {
	t.Parallel()

	u := New[Of3[*errA, *errB, *errC]](&errA{})

	// Missing *errC.
	cv := violationOf(t, func() { _, _, _ = Narrow[*errA, Of1[*errB]](u) })
	assert.Equal(t, "Narrow", cv.Op)

	// Still carries the picked type.
	violationOf(t, func() { _, _, _ = Narrow[*errA, Of3[*errA, *errB, *errC]](u) })

	// Picked type is not in the list.
	violationOf(t, func() { _, _, _ = Narrow[int, Of3[*errA, *errB, *errC]](u) })
}

func TestSubset_SplitsByList(t *testing.T) {
	t.Parallel()

	type list = Of3[*errA, *errB, *errC]
	type sub = Of2[*errC, *errA]
	type rest = Of1[*errB]

	c := &errC{}
	in, out := Subset[sub, rest](New[list](c))
	require.NotNil(t, in)
	assert.Nil(t, out)
	assert.Equal(t, 0, in.Tag())
	assert.Same(t, c, in.Value())

	b := &errB{}
	in, out = Subset[sub, rest](New[list](b))
	assert.Nil(t, in)
	require.NotNil(t, out)
	assert.Same(t, b, IntoInner(out))

	var none *Union[list]
	in, out = Subset[sub, rest](none)
	assert.Nil(t, in)
	assert.Nil(t, out)

	violationOf(t, func() { _, _ = Subset[sub, Of2[*errB, *errA]](none) })
}

func TestIntoInner_ReturnsPayloadOrZero(t *testing.T) {
	t.Parallel()

	a := &errA{}
	assert.Same(t, a, IntoInner(Lift(a)))

	var empty *Union[Of1[*errA]]
	assert.Nil(t, IntoInner(empty))

	d := TraceDyn(StrError("x"))
	assert.Same(t, d, IntoInner(Lift(d)))
}

// Widening then narrowing back returns the payload that went in, whatever
// variant it was.
func TestWidenNarrow_RoundTripProperty(t *testing.T) {
	t.Parallel()

	type small = Of2[*errA, *errB]
	type big = Of3[*errB, *errC, *errA]

	prop := func(pickA bool, n int) bool {
		var u *Union[small]
		if pickA {
			u = New[small](&errA{n: n})
		} else {
			u = New[small](&errB{n: n})
		}
		w := Widen[big](u)
		if _, rest, ok := Narrow[*errC, small](w); ok || rest == nil {
			return false
		} else if rest.Tag() != u.Tag() || rest.Value() != u.Value() {
			return false
		}
		return true
	}
	require.NoError(t, quick.Check(prop, nil))
}

// Narrowing one type at a time reaches every payload exactly once: a
// remainder never matches a type that was already peeled off.
func TestNarrow_ChainedPeelsEachVariantOnce(t *testing.T) {
	t.Parallel()

	type list = Of3[*errA, *errB, *errC]
	a, b, c := &errA{n: 1}, &errB{n: 2}, &errC{n: 3}

	for _, tc := range []struct {
		name string
		in   *Union[list]
		step int
		want any
	}{
		{"A", New[list](a), 1, a},
		{"B", New[list](b), 2, b},
		{"C", New[list](c), 3, c},
	} {
		t.Run(tc.name, func(t *testing.T) {
			gotA, r1, ok := Narrow[*errA, Of2[*errC, *errB]](tc.in)
			if tc.step == 1 {
				require.True(t, ok)
				assert.Nil(t, r1)
				assert.Same(t, tc.want, gotA)
				return
			}
			require.False(t, ok)
			require.NotNil(t, r1)

			gotB, r2, ok := Narrow[*errB, Of1[*errC]](r1)
			if tc.step == 2 {
				require.True(t, ok)
				assert.Nil(t, r2)
				assert.Same(t, tc.want, gotB)
				return
			}
			require.False(t, ok)
			require.NotNil(t, r2)
			assert.Same(t, tc.want, IntoInner(r2))
		})
	}
}
