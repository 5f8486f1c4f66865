// doc.go — package documentation for xgx-union
//
// Package xgxunion is an error-handling substrate for call graphs that need
// to (a) attach human-readable context and a capture point to failures as
// they propagate, and (b) let a function signature state precisely which
// failure kinds its caller must handle, without a bespoke error enum per
// function.
//
// It has two independent values and a thin conversion layer between them:
//   - Traced[E]: one cause, an ordered context chain, an optional stack.
//   - Union[L]: exactly one value out of the variant list L (Of1 … Of9).
//   - Lift / Widen / Narrow / Subset / IntoInner move a payload between
//     lists without copying it.
//
// # Tracing and Context
//
//	func readConfig(path string) ([]byte, *xgxunion.Traced[*fs.PathError]) {
//		b, err := os.ReadFile(path)
//		if err != nil {
//			return nil, xgxunion.Trace(err.(*fs.PathError))
//		}
//		return b, nil
//	}
//
//	func loadSettings(p string) (*Settings, *xgxunion.Traced[*fs.PathError]) {
//		b, terr := readConfig(p)
//		if terr != nil {
//			return nil, terr.Context("loading settings")
//		}
//		return parse(b), nil
//	}
//
// Keep the *Traced type in signatures. A nil *Traced that ends up in an
// error variable is still treated as success by every entry point (Trace,
// TraceDyn, Context, WithContext, Walk and the predicates), but it compares
// non-nil with ==, as any typed nil does.
//
// Context chains keep attach order: the annotation closest to the failure
// comes first. Fluent methods never mutate the receiver; each returns a new
// wrapper. WithContext takes a func so that formatting runs only on the
// error path.
//
// Tracing never nests. Trace or TraceDyn on an already traced error merges
// into it: the existing chain and capture carry over, and no new capture is
// taken.
//
// # When Are Stacks Captured?
//
//	+-------------------------------+-------------------+------------------------------+
//	| Operation                     | Captures stack?   | Notes                        |
//	+-------------------------------+-------------------+------------------------------+
//	| Trace / TraceDyn (new)        | if enabled        | XGX_BACKTRACE or Configure   |
//	| Trace / TraceDyn (traced)     | NO                | keeps the original capture   |
//	| Context / WithContext         | only when tracing | same rule as TraceDyn        |
//	| Union.Collapse                | untraced payloads | traced payloads keep theirs  |
//	| ContractViolation             | YES (always)      | programming bug              |
//	+-------------------------------+-------------------+------------------------------+
//
// Build with -tags xgxnotrace to compile the pass-through implementation:
// Traced[E] then holds only its cause, Context/WithContext return the input
// unchanged (WithContext never calls its func), and nothing is captured.
//
// # Unions
//
// A Union's variant list is part of its type, so the signature documents
// exactly which failures escape:
//
//	type fetchErr = xgxunion.Union[xgxunion.Of2[*NotFound, *xgxunion.Dyn]]
//
//	func fetch(id string) (Item, *fetchErr)
//
// Reshaping is index arithmetic over the two lists, validated and cached
// on first use of each pair of lists:
//
//	u := xgxunion.Lift(notFound)                                // Of1[*NotFound]
//	w := xgxunion.Widen[xgxunion.Of2[*NotFound, *xgxunion.Dyn]](u)
//	nf, rest, ok := xgxunion.Narrow[*NotFound, xgxunion.Of1[*xgxunion.Dyn]](w)
//	if !ok {
//		return xgxunion.IntoInner(rest)                         // *Dyn
//	}
//
// Exhaustive handling uses Match1 … Match9, one handler per variant.
//
// # Contract Violations
//
// Misuse that the Go type system cannot reject (duplicate variant types,
// widening to a list missing a type, a wrong Narrow remainder, Inner on a
// multi-variant union, Lift on a union) panics with *ContractViolation on
// first use. These are bugs, not results.
//
// # Interop
//
//   - Traced and Union implement error and Unwrap: errors.Is/As reach the
//     root cause.
//   - %+v renders the cause, a "Context:" list and a "Backtrace:" block.
//   - Both implement slog.LogValuer.
//   - Traced.StackTrace exports the capture as a github.com/pkg/errors
//     StackTrace; StackOf reads stacks recorded by pkg/errors too.
package xgxunion
