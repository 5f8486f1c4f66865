// stack.go — capture facility for traced errors.
//
// Design goals:
//   - Use runtime.Callers + runtime.CallersFrames for accurate frame
//     resolution (handles inlining correctly).
//   - Capture is gated: nothing is attempted unless CaptureEnabled reports
//     true (see config.go). A disabled or unsupported facility yields a nil
//     Stack, never an error.
//   - Interop: a Stack converts to github.com/pkg/errors' StackTrace so
//     tooling that understands pkg/errors can read our capture points, and
//     stacks recorded by pkg/errors can be read back into a Stack.
package xgxunion

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

// Frame represents a single call site in a stack trace.
type Frame struct {
	PC       uintptr // program counter of the call instruction
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// String renders the frame as "function file:line".
func (f Frame) String() string {
	return fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

// StackTrace converts the stack to pkg/errors' representation. Both sides
// store return-address style PCs, so frames convert one to one.
func (s Stack) StackTrace() errors.StackTrace {
	if len(s) == 0 {
		return nil
	}
	out := make(errors.StackTrace, len(s))
	for i, fr := range s {
		out[i] = errors.Frame(fr.PC)
	}
	return out
}

// stackFromTrace resolves a pkg/errors StackTrace into a Stack.
func stackFromTrace(st errors.StackTrace) Stack {
	if len(st) == 0 {
		return nil
	}
	pcs := make([]uintptr, len(st))
	for i, f := range st {
		pcs[i] = uintptr(f)
	}
	return resolve(pcs)
}

// captureStack captures the caller's stack when capture is enabled.
//
// Skip model: skip=0 records the caller of captureStack first. Helpers add
// +1 per layer they introduce so the first frame lands on the user-visible
// call site (the caller of Trace, TraceDyn, ...).
func captureStack(skip int) Stack {
	if !CaptureEnabled() {
		return nil
	}
	return captureStackDepth(skip+1, maxDepth())
}

// captureStackAlways ignores the capture toggle. Contract violations use it:
// they are programming bugs and always carry a stack.
func captureStackAlways(skip int) Stack {
	return captureStackDepth(skip+1, defaultMaxDepth)
}

// captureStackDepth captures up to depth frames. skip=0 is its caller.
func captureStackDepth(skip, depth int) Stack {
	if depth <= 0 {
		depth = defaultMaxDepth
	}
	// +2: runtime.Callers itself and captureStackDepth.
	pc := make([]uintptr, depth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	return resolve(pc[:n])
}

func resolve(pcs []uintptr) Stack {
	frames := runtime.CallersFrames(pcs)
	out := make(Stack, 0, len(pcs))
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}
