// match.go — exhaustive dispatch on a union.
//
// MatchN takes one handler per variant, in list order, and calls the one
// for the live tag. The compiler checks that every variant has a handler,
// which is what a switch over a closed enum would give.
package xgxunion

func matchNil(n int) {
	panic(violation(2, "Match", "nil union passed to Match%d", n))
}

// Match1 applies onA to the payload of a single-variant union.
func Match1[A, R any](u *Union[Of1[A]], onA func(A) R) R {
	if u == nil {
		matchNil(1)
	}
	return onA(payload[A](u.value))
}

// Match2 dispatches a 2-variant union:
//
//	msg := Match2(u,
//		func(e *os.PathError) string { return "path: " + e.Path },
//		func(e *Dyn) string { return e.Error() },
//	)
func Match2[A, B, R any](u *Union[Of2[A, B]], onA func(A) R, onB func(B) R) R {
	if u == nil {
		matchNil(2)
	}
	switch u.tag {
	case 0:
		return onA(payload[A](u.value))
	default:
		return onB(payload[B](u.value))
	}
}

// Match3 dispatches a 3-variant union.
func Match3[A, B, C, R any](u *Union[Of3[A, B, C]], onA func(A) R, onB func(B) R, onC func(C) R) R {
	if u == nil {
		matchNil(3)
	}
	switch u.tag {
	case 0:
		return onA(payload[A](u.value))
	case 1:
		return onB(payload[B](u.value))
	default:
		return onC(payload[C](u.value))
	}
}

// Match4 dispatches a 4-variant union.
func Match4[A, B, C, D, R any](
	u *Union[Of4[A, B, C, D]],
	onA func(A) R,
	onB func(B) R,
	onC func(C) R,
	onD func(D) R,
) R {
	if u == nil {
		matchNil(4)
	}
	switch u.tag {
	case 0:
		return onA(payload[A](u.value))
	case 1:
		return onB(payload[B](u.value))
	case 2:
		return onC(payload[C](u.value))
	default:
		return onD(payload[D](u.value))
	}
}

// Match5 dispatches a 5-variant union.
func Match5[A, B, C, D, E, R any](
	u *Union[Of5[A, B, C, D, E]],
	onA func(A) R,
	onB func(B) R,
	onC func(C) R,
	onD func(D) R,
	onE func(E) R,
) R {
	if u == nil {
		matchNil(5)
	}
	switch u.tag {
	case 0:
		return onA(payload[A](u.value))
	case 1:
		return onB(payload[B](u.value))
	case 2:
		return onC(payload[C](u.value))
	case 3:
		return onD(payload[D](u.value))
	default:
		return onE(payload[E](u.value))
	}
}

// Match6 dispatches a 6-variant union.
func Match6[A, B, C, D, E, F, R any](
	u *Union[Of6[A, B, C, D, E, F]],
	onA func(A) R,
	onB func(B) R,
	onC func(C) R,
	onD func(D) R,
	onE func(E) R,
	onF func(F) R,
) R {
	if u == nil {
		matchNil(6)
	}
	switch u.tag {
	case 0:
		return onA(payload[A](u.value))
	case 1:
		return onB(payload[B](u.value))
	case 2:
		return onC(payload[C](u.value))
	case 3:
		return onD(payload[D](u.value))
	case 4:
		return onE(payload[E](u.value))
	default:
		return onF(payload[F](u.value))
	}
}

// Match7 dispatches a 7-variant union.
func Match7[A, B, C, D, E, F, G, R any](
	u *Union[Of7[A, B, C, D, E, F, G]],
	onA func(A) R,
	onB func(B) R,
	onC func(C) R,
	onD func(D) R,
	onE func(E) R,
	onF func(F) R,
	onG func(G) R,
) R {
	if u == nil {
		matchNil(7)
	}
	switch u.tag {
	case 0:
		return onA(payload[A](u.value))
	case 1:
		return onB(payload[B](u.value))
	case 2:
		return onC(payload[C](u.value))
	case 3:
		return onD(payload[D](u.value))
	case 4:
		return onE(payload[E](u.value))
	case 5:
		return onF(payload[F](u.value))
	default:
		return onG(payload[G](u.value))
	}
}

// Match8 dispatches a 8-variant union.
func Match8[A, B, C, D, E, F, G, H, R any](
	u *Union[Of8[A, B, C, D, E, F, G, H]],
	onA func(A) R,
	onB func(B) R,
	onC func(C) R,
	onD func(D) R,
	onE func(E) R,
	onF func(F) R,
	onG func(G) R,
	onH func(H) R,
) R {
	if u == nil {
		matchNil(8)
	}
	switch u.tag {
	case 0:
		return onA(payload[A](u.value))
	case 1:
		return onB(payload[B](u.value))
	case 2:
		return onC(payload[C](u.value))
	case 3:
		return onD(payload[D](u.value))
	case 4:
		return onE(payload[E](u.value))
	case 5:
		return onF(payload[F](u.value))
	case 6:
		return onG(payload[G](u.value))
	default:
		return onH(payload[H](u.value))
	}
}

// Match9 dispatches a 9-variant union.
func Match9[A, B, C, D, E, F, G, H, I, R any](
	u *Union[Of9[A, B, C, D, E, F, G, H, I]],
	onA func(A) R,
	onB func(B) R,
	onC func(C) R,
	onD func(D) R,
	onE func(E) R,
	onF func(F) R,
	onG func(G) R,
	onH func(H) R,
	onI func(I) R,
) R {
	if u == nil {
		matchNil(9)
	}
	switch u.tag {
	case 0:
		return onA(payload[A](u.value))
	case 1:
		return onB(payload[B](u.value))
	case 2:
		return onC(payload[C](u.value))
	case 3:
		return onD(payload[D](u.value))
	case 4:
		return onE(payload[E](u.value))
	case 5:
		return onF(payload[F](u.value))
	case 6:
		return onG(payload[G](u.value))
	case 7:
		return onH(payload[H](u.value))
	default:
		return onI(payload[I](u.value))
	}
}
