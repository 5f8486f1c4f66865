// Package xgxunion carries failures through a call graph with two
// composable values: Traced, a single-cause wrapper that records ordered
// context and an optional capture point, and Union, an open sum over a
// per-call-site list of error types.
//
// Design tenets:
//   - Interop-first: both values implement error and Unwrap, so
//     errors.Is/As reach the root cause.
//   - Pass-through on success: every conversion maps nil to nil.
//   - Non-mutating ergonomics: context appends return a new wrapper.
//   - Build-mode degrade: the xgxnotrace tag turns Traced into a
//     transparent newtype with no context or capture.
package xgxunion

// Traced wraps a cause of type E together with the context chain appended
// by each call site it passed through and, when capture is enabled, the
// stack at the point it was first wrapped.
//
// A *Traced is created once by Trace or TraceDyn and never nested: tracing
// an already traced error merges into the existing wrapper.
//
// Fluent methods are nil-receiver safe and return a NEW value; the receiver
// is never mutated, so a wrapper may be shared across goroutines.
type Traced[E error] struct {
	cause E
	rec   record
}

// Dyn is the type-erased traced error.
type Dyn = Traced[error]

// tracer is the capability marking a value as already traced. Conversions
// dispatch on it instead of inspecting type names.
type tracer interface {
	error
	tracedCause() error
	tracedRecord() record
}

var (
	_ tracer = (*Traced[error])(nil)
	_ tracer = (*Traced[StrError])(nil)
)

func (t *Traced[E]) tracedCause() error {
	if t == nil {
		return nil
	}
	return t.cause
}

func (t *Traced[E]) tracedRecord() record {
	if t == nil {
		return record{}
	}
	return t.rec
}

// Error returns the cause's message. Context and trace are rendered only by
// the %+v verb (see format.go).
func (t *Traced[E]) Error() string {
	if t == nil {
		return "<nil>"
	}
	if isNil(t.cause) {
		return "<nil>"
	}
	return t.cause.Error()
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (t *Traced[E]) Unwrap() error {
	if t == nil {
		return nil
	}
	return t.cause
}

// Cause returns the wrapped error without consuming the wrapper.
func (t *Traced[E]) Cause() E {
	var zero E
	if t == nil {
		return zero
	}
	return t.cause
}

// IntoInner unwraps to the underlying error, discarding context and trace.
// Use it at API boundaries that want a foreign error type.
func (t *Traced[E]) IntoInner() E {
	return t.Cause()
}

// Context appends msg to the context chain and returns a NEW wrapper.
// On a nil receiver (the success path) it returns nil.
func (t *Traced[E]) Context(msg string) *Traced[E] {
	if t == nil || !trackingEnabled {
		return t
	}
	return &Traced[E]{cause: t.cause, rec: t.rec.withContext(msg)}
}

// WithContext is like Context but builds the message lazily: fn runs only
// when the receiver is non-nil and context tracking is compiled in.
func (t *Traced[E]) WithContext(fn func() string) *Traced[E] {
	if t == nil || !trackingEnabled || fn == nil {
		return t
	}
	return &Traced[E]{cause: t.cause, rec: t.rec.withContext(fn())}
}

// Chain returns a copy of the context chain, earliest attachment first.
func (t *Traced[E]) Chain() []string {
	if t == nil {
		return nil
	}
	return ctxCopy(t.rec.chain())
}

// Stack returns the capture taken when the error was first wrapped, or nil
// when capture was disabled.
func (t *Traced[E]) Stack() Stack {
	if t == nil {
		return nil
	}
	return t.rec.stack()
}

// Erase converts to the type-erased wrapper, keeping context and trace.
// No new capture is taken.
func (t *Traced[E]) Erase() *Dyn {
	if t == nil {
		return nil
	}
	if d, ok := any(t).(*Dyn); ok {
		return d
	}
	return &Dyn{cause: t.cause, rec: t.rec}
}

// Map replaces the cause through fn while preserving context and trace.
func Map[E, F error](t *Traced[E], fn func(E) F) *Traced[F] {
	if t == nil {
		return nil
	}
	return &Traced[F]{cause: fn(t.cause), rec: t.rec}
}

// Into re-types the wrapper when the cause also satisfies F (for example an
// interface it implements). It reports false when it does not.
func Into[F, E error](t *Traced[E]) (*Traced[F], bool) {
	if t == nil {
		return nil, true
	}
	if same, ok := any(t).(*Traced[F]); ok {
		return same, true
	}
	f, ok := any(t.cause).(F)
	if !ok {
		return nil, false
	}
	return &Traced[F]{cause: f, rec: t.rec}, true
}
