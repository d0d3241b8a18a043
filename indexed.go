package jsonlens

import "iter"

// keyMembers focuses the value stored under name inside a member sequence.
func keyMembers(name string) Optic[Members, Value] {
	return NewOptic(
		func(ms Members) (Value, bool) { return ms.Lookup(name) },
		func(ms Members, f func(Value) Value) Members {
			i := indexOfKey(ms, name)
			if i < 0 {
				return ms
			}
			out := append(Members(nil), ms...)
			out[i].Value = f(out[i].Value)
			return out
		},
	)
}

// Key focuses the value at name inside an object. An absent key reads
// empty; a write to an absent key is a no-op. The optic only ever replaces
// in place — it never inserts, so the object's key set is invariant under
// writes.
func Key[H any](r Rep[H], name string) Optic[H, Value] {
	return Compose(AsObject(r), keyMembers(name))
}

// nthElems focuses element i of a slice, bounds-checked.
func nthElems(i int) Optic[[]Value, Value] {
	return NewOptic(
		func(vs []Value) (Value, bool) {
			if i < 0 || i >= len(vs) {
				return Value{}, false
			}
			return vs[i], true
		},
		func(vs []Value, f func(Value) Value) []Value {
			if i < 0 || i >= len(vs) {
				return vs
			}
			out := append([]Value(nil), vs...)
			out[i] = f(out[i])
			return out
		},
	)
}

// Nth focuses element i of an array. Out-of-range indexes, including
// negative ones, read empty and write as a no-op: the optic never grows,
// shrinks, or panics. An in-range write replaces exactly element i and
// copies the rest untouched.
func Nth[H any](r Rep[H], i int) Optic[H, Value] {
	return Compose(AsArray(r), nthElems(i))
}

// eachMemberValue traverses every member value of a member sequence,
// keeping keys and insertion order intact on writes.
func eachMemberValue() Traversal[Members, Value] {
	return NewTraversal(
		func(ms Members) iter.Seq[Value] {
			return func(yield func(Value) bool) {
				for _, m := range ms {
					if !yield(m.Value) {
						return
					}
				}
			}
		},
		func(ms Members, f func(Value) Value) Members {
			out := append(Members(nil), ms...)
			for i := range out {
				out[i].Value = f(out[i].Value)
			}
			return out
		},
	)
}

// EachMember traverses every member value of the object beneath r. Writes
// rewrite each value in place, preserving key association and insertion
// order; non-objects are empty and immune.
func EachMember[H any](r Rep[H]) Traversal[H, Value] {
	return ComposeT(AsObject(r), eachMemberValue())
}

// eachElem traverses every element of a slice in order.
func eachElem() Traversal[[]Value, Value] {
	return NewTraversal(
		func(vs []Value) iter.Seq[Value] {
			return func(yield func(Value) bool) {
				for _, v := range vs {
					if !yield(v) {
						return
					}
				}
			}
		},
		func(vs []Value, f func(Value) Value) []Value {
			out := append([]Value(nil), vs...)
			for i := range out {
				out[i] = f(out[i])
			}
			return out
		},
	)
}

// EachElem traverses every element of the array beneath r, in order.
func EachElem[H any](r Rep[H]) Traversal[H, Value] {
	return ComposeT(AsArray(r), eachElem())
}
