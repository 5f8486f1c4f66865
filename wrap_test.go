//go:build !xgxnotrace

// wrap_test.go — verification of Trace / TraceDyn / Context / WithContext.
package xgxunion

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"
	"testing"
)

// wrapSite is a known call site for capture assertions.
func wrapSite(err error) *Dyn { return TraceDyn(err) }

func TestTrace_NilYieldsNil(t *testing.T) {
	t.Parallel()

	var pe *fs.PathError
	if got := Trace(pe); got != nil {
		t.Fatalf("Trace(typed nil) = %v, want nil", got)
	}
	if got := TraceDyn(nil); got != nil {
		t.Fatalf("TraceDyn(nil) = %v, want nil", got)
	}
	if got := Context(nil, "x"); got != nil {
		t.Fatalf("Context(nil) = %v, want nil", got)
	}
	if got := WithContext(nil, func() string { panic("must not run") }); got != nil {
		t.Fatalf("WithContext(nil) = %v, want nil", got)
	}
}

func TestTrace_IsIdempotent(t *testing.T) {
	t.Parallel()

	once := TraceDyn(errors.New("boom")).Context("a")
	twice := TraceDyn(once)
	if twice != once {
		t.Fatalf("TraceDyn on *Dyn must return the same wrapper")
	}
	if reflect.TypeOf(twice) != reflect.TypeOf(once) {
		t.Fatalf("wrapper type changed: %T vs %T", twice, once)
	}

	typed := Trace(StrError("boom"))
	erased := typed.Erase()
	if Trace[error](erased) != erased {
		t.Fatalf("Trace[error] on *Dyn must return the same wrapper")
	}
	if got := Trace[error](typed); got.Cause() != StrError("boom") {
		t.Fatalf("merged cause = %v, want the original cause (no nesting)", got.Cause())
	}
}

func TestTraceDyn_MergesTypedWithoutRecapture(t *testing.T) {
	defer Configure(WithCapture(true))()

	typed := Trace(StrError("boom")).Context("first")
	merged := TraceDyn(typed).Context("second")

	if got := merged.Chain(); !reflect.DeepEqual(got, []string{"first", "second"}) {
		t.Fatalf("chain = %v", got)
	}
	if _, nested := merged.Cause().(tracer); nested {
		t.Fatalf("merged cause is itself traced: %T", merged.Cause())
	}
	if len(merged.Stack()) == 0 || &merged.Stack()[0] != &typed.Stack()[0] {
		t.Fatalf("merge must keep the original capture")
	}
}

func TestTrace_NestedTypedIsContractViolation(t *testing.T) {
	t.Parallel()

	inner := Trace(StrError("boom"))
	defer func() {
		r := recover()
		cv, ok := r.(*ContractViolation)
		if !ok {
			t.Fatalf("recovered %T (%v), want *ContractViolation", r, r)
		}
		if cv.Op != "Trace" || len(cv.Stack()) == 0 {
			t.Fatalf("violation = %+v", cv)
		}
		if fn := cv.Stack()[0].Function; !strings.HasSuffix(fn, ".TestTrace_NestedTypedIsContractViolation") {
			t.Fatalf("violation reported at %s, want the calling test", fn)
		}
	}()
	_ = Trace(inner) // E = *Traced[StrError]: cannot merge into that type
}

func TestTraceDyn_CapturesAtCallSite(t *testing.T) {
	defer Configure(WithCapture(true))()

	tr := wrapSite(errors.New("boom"))
	stk := tr.Stack()
	if len(stk) == 0 {
		t.Fatalf("expected a capture")
	}
	if !strings.HasSuffix(stk[0].Function, ".wrapSite") {
		t.Fatalf("first frame = %s, want wrapSite", stk[0].Function)
	}
}

func TestTraceDyn_NoCaptureWhenDisabled(t *testing.T) {
	defer Configure(WithCapture(false))()

	if stk := TraceDyn(errors.New("boom")).Stack(); stk != nil {
		t.Fatalf("capture disabled but got %d frames", len(stk))
	}
}

func TestContext_FreeFunctionOnPlainError(t *testing.T) {
	t.Parallel()

	root := errors.New("root")
	got := WithContext(Context(root, "a"), func() string { return fmt.Sprintf("b=%d", 2) })
	if want := []string{"a", "b=2"}; !reflect.DeepEqual(got.Chain(), want) {
		t.Fatalf("chain = %v, want %v", got.Chain(), want)
	}
	if !errors.Is(got, root) {
		t.Fatalf("errors.Is lost the root")
	}
	if _, nested := got.Cause().(tracer); nested {
		t.Fatalf("Context nested a wrapper")
	}
}

// mayFail returns a typed *Traced, nil on success.
func mayFail(fail bool) *Traced[StrError] {
	if fail {
		return Trace(StrError("failed"))
	}
	return nil
}

func TestEntryPoints_TypedNilErrorIsSuccess(t *testing.T) {
	t.Parallel()

	var err error = mayFail(false) // non-nil interface holding a nil *Traced

	if got := TraceDyn(err); got != nil {
		t.Fatalf("TraceDyn(typed nil) = %v, want nil", got)
	}
	if got := Trace[error](err); got != nil {
		t.Fatalf("Trace(typed nil) = %v, want nil", got)
	}
	if got := Context(err, "a"); got != nil {
		t.Fatalf("Context(typed nil) = %v, want nil", got)
	}
	if got := WithContext(err, func() string { panic("must not run") }); got != nil {
		t.Fatalf("WithContext(typed nil) = %v, want nil", got)
	}
	if IsTraced(err) || ContextOf(err) != nil || StackOf(err) != nil {
		t.Fatalf("predicates must treat a typed nil as no error")
	}
	if Root(err) != nil || Has(err, StrError("failed")) {
		t.Fatalf("traversal must treat a typed nil as no error")
	}

	if got := Context(mayFail(true), "a"); got == nil || got.Chain()[0] != "a" {
		t.Fatalf("the failure path must still be traced: %v", got)
	}
}

func TestCollapse_TypedNilPayload(t *testing.T) {
	t.Parallel()

	var nilTraced *Traced[StrError]
	d := New[Of2[*Traced[StrError], StrError]](nilTraced).Collapse()
	if d == nil || d.Cause() != StrError("<nil>") {
		t.Fatalf("Collapse of a nil payload = %#v, want a traced <nil> StrError", d)
	}
}
