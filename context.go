// context.go — append-only context chain.
//
// Design:
//   • Internal representation: []string in attach order (earliest first).
//   • Builders are non-mutating: every append returns a NEW slice, so a
//     wrapper handed to another goroutine never observes later appends.
package xgxunion

// ctxCloneAppend returns a NEW slice with dst's contents followed by add.
// It always allocates a fresh backing array to avoid aliasing via append.
func ctxCloneAppend(dst []string, add ...string) []string {
	n := len(dst)
	m := len(add)
	if m == 0 {
		return dst
	}
	out := make([]string, n+m)
	copy(out, dst)
	copy(out[n:], add)
	return out
}

// ctxCopy returns a copy of chain safe for callers to mutate.
func ctxCopy(chain []string) []string {
	if len(chain) == 0 {
		return nil
	}
	out := make([]string, len(chain))
	copy(out, chain)
	return out
}
