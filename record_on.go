//go:build !xgxnotrace

package xgxunion

// trackingEnabled selects the tracking implementation of record.
const trackingEnabled = true

// record is the diagnostic state a Traced wrapper carries next to its cause:
// the ordered context chain and the optional capture.
type record struct {
	ctx []string
	stk Stack
}

// captureRecord starts a record at the caller's site (skip=0 is the caller).
func captureRecord(skip int) record {
	return record{stk: captureStack(skip + 1)}
}

func (r record) withContext(msg string) record {
	return record{ctx: ctxCloneAppend(r.ctx, msg), stk: r.stk}
}

func (r record) chain() []string { return r.ctx }

func (r record) stack() Stack { return r.stk }
