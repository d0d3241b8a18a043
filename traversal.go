package jsonlens

import "iter"

// Traversal is the zero-or-more counterpart of Optic: it focuses every
// target inside an S. Reads yield a finite, restartable sequence; writes
// rewrite every target in one pass, preserving the surrounding structure.
type Traversal[S, A any] struct {
	all func(S) iter.Seq[A]
	mod func(S, func(A) A) S
}

// NewTraversal builds a Traversal from its two primitive operations. Both
// must be pure, and all must yield a finite sequence that can be ranged
// over more than once.
func NewTraversal[S, A any](all func(S) iter.Seq[A], mod func(S, func(A) A) S) Traversal[S, A] {
	return Traversal[S, A]{all: all, mod: mod}
}

// All returns the focused values in traversal order.
func (t Traversal[S, A]) All(s S) iter.Seq[A] { return t.all(s) }

// Collect gathers the focused values into a slice.
func (t Traversal[S, A]) Collect(s S) []A {
	var out []A
	for a := range t.all(s) {
		out = append(out, a)
	}
	return out
}

// Count reports how many values the traversal focuses inside s.
func (t Traversal[S, A]) Count(s S) int {
	n := 0
	for range t.all(s) {
		n++
	}
	return n
}

// Modify rewrites every focused value through f, returning a fresh S.
func (t Traversal[S, A]) Modify(s S, f func(A) A) S { return t.mod(s, f) }

// Set replaces every focused value with a.
func (t Traversal[S, A]) Set(s S, a A) S {
	return t.mod(s, func(A) A { return a })
}

// AsTraversal widens an optic into a traversal of zero or one targets.
func AsTraversal[S, A any](o Optic[S, A]) Traversal[S, A] {
	return NewTraversal(
		func(s S) iter.Seq[A] {
			return func(yield func(A) bool) {
				if a, ok := o.get(s); ok {
					yield(a)
				}
			}
		},
		o.mod,
	)
}

// ComposeT focuses a traversal beneath an optic. When the optic misses the
// traversal is empty and writes pass through unchanged.
func ComposeT[S, A, B any](outer Optic[S, A], inner Traversal[A, B]) Traversal[S, B] {
	return NewTraversal(
		func(s S) iter.Seq[B] {
			return func(yield func(B) bool) {
				a, ok := outer.get(s)
				if !ok {
					return
				}
				for b := range inner.all(a) {
					if !yield(b) {
						return
					}
				}
			}
		},
		func(s S, f func(B) B) S {
			return outer.mod(s, func(a A) A { return inner.mod(a, f) })
		},
	)
}

// ComposeTO narrows every target of a traversal through an optic. Targets
// the optic misses are skipped on read and left untouched on write.
func ComposeTO[S, A, B any](outer Traversal[S, A], inner Optic[A, B]) Traversal[S, B] {
	return NewTraversal(
		func(s S) iter.Seq[B] {
			return func(yield func(B) bool) {
				for a := range outer.all(s) {
					if b, ok := inner.get(a); ok {
						if !yield(b) {
							return
						}
					}
				}
			}
		},
		func(s S, f func(B) B) S {
			return outer.mod(s, func(a A) A { return inner.mod(a, f) })
		},
	)
}

// ComposeTT chains two traversals, focusing every inner target of every
// outer target.
func ComposeTT[S, A, B any](outer Traversal[S, A], inner Traversal[A, B]) Traversal[S, B] {
	return NewTraversal(
		func(s S) iter.Seq[B] {
			return func(yield func(B) bool) {
				for a := range outer.all(s) {
					for b := range inner.all(a) {
						if !yield(b) {
							return
						}
					}
				}
			}
		},
		func(s S, f func(B) B) S {
			return outer.mod(s, func(a A) A { return inner.mod(a, f) })
		},
	)
}
