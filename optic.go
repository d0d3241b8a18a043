package jsonlens

// Optic is a composable read/modify accessor focusing at most one A inside
// an S. A read that finds no target reports ok=false; a write whose target
// is absent returns the input unchanged. Optics are pure and total: they
// never return errors and never panic on a miss, so composed chains
// short-circuit to empty/no-op without per-link error plumbing.
type Optic[S, A any] struct {
	get func(S) (A, bool)
	mod func(S, func(A) A) S
}

// NewOptic builds an Optic from its two primitive operations. get reports
// the focused value, if any; mod applies f to the focused value and returns
// the rebuilt whole, or the input unchanged when there is no focus. Both
// must be pure.
func NewOptic[S, A any](get func(S) (A, bool), mod func(S, func(A) A) S) Optic[S, A] {
	return Optic[S, A]{get: get, mod: mod}
}

// Get reads the focused value.
func (o Optic[S, A]) Get(s S) (A, bool) { return o.get(s) }

// GetOr reads the focused value, falling back to fallback on a miss.
func (o Optic[S, A]) GetOr(s S, fallback A) A {
	if a, ok := o.get(s); ok {
		return a
	}
	return fallback
}

// Exists reports whether the optic focuses anything inside s.
func (o Optic[S, A]) Exists(s S) bool {
	_, ok := o.get(s)
	return ok
}

// Set replaces the focused value with a. When the focus is absent the
// input is returned unchanged; Set never creates structure.
func (o Optic[S, A]) Set(s S, a A) S {
	return o.mod(s, func(A) A { return a })
}

// Modify rewrites the focused value through f, returning a fresh S. The
// input is never mutated.
func (o Optic[S, A]) Modify(s S, f func(A) A) S { return o.mod(s, f) }

// Identity returns the optic that focuses the whole value.
func Identity[S any]() Optic[S, S] {
	return NewOptic(
		func(s S) (S, bool) { return s, true },
		func(s S, f func(S) S) S { return f(s) },
	)
}

// Compose chains inner beneath outer: the result focuses what inner finds
// inside outer's focus. A miss at either link makes the whole chain a miss.
func Compose[S, A, B any](outer Optic[S, A], inner Optic[A, B]) Optic[S, B] {
	return NewOptic(
		func(s S) (B, bool) {
			a, ok := outer.get(s)
			if !ok {
				var zero B
				return zero, false
			}
			return inner.get(a)
		},
		func(s S, f func(B) B) S {
			return outer.mod(s, func(a A) A { return inner.mod(a, f) })
		},
	)
}

// Compose3 chains three optics.
func Compose3[S, A, B, C any](o1 Optic[S, A], o2 Optic[A, B], o3 Optic[B, C]) Optic[S, C] {
	return Compose(Compose(o1, o2), o3)
}
