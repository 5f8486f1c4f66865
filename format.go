// format.go — fmt.Formatter and slog.LogValuer implementations.
//
// Behavior:
//
//   %s, %v   → concise cause message (Error()).
//   %q       → quoted Error().
//   %+v      → report:
//                <cause message>
//
//                Context:
//                	- first attached
//                	- last attached
//
//                Backtrace:
//                  funcA file.go:123
//                  funcB other.go:45
//
// The Context and Backtrace sections are omitted when empty. A union
// formats as its payload, so a traced payload renders its full report.
package xgxunion

import (
	"fmt"
	"io"
	"log/slog"
)

// render is the one-line text of an arbitrary payload.
func render(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

// writeReport writes the %+v layout.
func writeReport(w io.Writer, msg string, chain []string, stk Stack) {
	_, _ = io.WriteString(w, msg)
	if len(chain) > 0 {
		_, _ = io.WriteString(w, "\n\nContext:")
		for _, c := range chain {
			_, _ = fmt.Fprintf(w, "\n\t- %s", c)
		}
	}
	if len(stk) > 0 {
		_, _ = io.WriteString(w, "\n\nBacktrace:")
		for _, fr := range stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}

func (t *Traced[E]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			writeReport(s, t.Error(), t.Chain(), t.Stack())
			return
		}
		_, _ = io.WriteString(s, t.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", t.Error())
	default:
		_, _ = io.WriteString(s, t.Error())
	}
}

// LogValue groups the cause, the context chain and the capture:
//
//	slog.Error("request failed", "err", err)
//	// err.cause=... err.context=[...] err.trace=[...]
func (t *Traced[E]) LogValue() slog.Value {
	if t == nil {
		return slog.StringValue("<nil>")
	}
	attrs := []slog.Attr{slog.String("cause", t.Error())}
	if chain := t.Chain(); len(chain) > 0 {
		attrs = append(attrs, slog.Any("context", chain))
	}
	if stk := t.Stack(); len(stk) > 0 {
		frames := make([]string, len(stk))
		for i, fr := range stk {
			frames[i] = fr.String()
		}
		attrs = append(attrs, slog.Any("trace", frames))
	}
	return slog.GroupValue(attrs...)
}

func (u *Union[L]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') && u != nil {
			if f, ok := u.value.(fmt.Formatter); ok {
				f.Format(s, verb)
				return
			}
		}
		_, _ = io.WriteString(s, u.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", u.Error())
	default:
		_, _ = io.WriteString(s, u.Error())
	}
}

// LogValue records the live variant's type next to its value. A payload
// that is itself a slog.LogValuer is resolved by the handler.
func (u *Union[L]) LogValue() slog.Value {
	if u == nil {
		return slog.StringValue("<nil>")
	}
	return slog.GroupValue(
		slog.String("variant", typeName(setOf[L]().types[u.tag])),
		slog.Any("value", u.value),
	)
}
