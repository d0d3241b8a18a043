package jsonlens

// AsValue views the host's JSON document as a Value tree. For the Tree
// representation this is the identity optic; for encoded hosts the read
// direction parses the document and the write direction re-serializes the
// whole of it. A host that fails to parse reads empty and passes writes
// through unchanged.
func AsValue[H any](r Rep[H]) Optic[H, Value] {
	return NewOptic(
		func(h H) (Value, bool) { return r.Decode(h) },
		func(h H, f func(Value) Value) H {
			v, ok := r.Decode(h)
			if !ok {
				return h
			}
			return r.Encode(f(v))
		},
	)
}

// asObjectValue matches only the object case of a Value.
func asObjectValue() Optic[Value, Members] {
	return NewOptic(
		func(v Value) (Members, bool) {
			if v.kind != KindObject {
				return nil, false
			}
			return v.Fields(), true
		},
		func(v Value, f func(Members) Members) Value {
			if v.kind != KindObject {
				return v
			}
			return objectOf(f(v.Fields()))
		},
	)
}

// AsObject views the document beneath r as its ordered member sequence.
// Non-object values read empty and are immune to writes. Written member
// sequences are deduplicated so the unique-key invariant holds.
func AsObject[H any](r Rep[H]) Optic[H, Members] {
	return Compose(AsValue(r), asObjectValue())
}

// asArrayValue matches only the array case of a Value.
func asArrayValue() Optic[Value, []Value] {
	return NewOptic(
		func(v Value) ([]Value, bool) {
			if v.kind != KindArray {
				return nil, false
			}
			return v.Elems(), true
		},
		func(v Value, f func([]Value) []Value) Value {
			if v.kind != KindArray {
				return v
			}
			return ArrayValue(f(v.Elems())...)
		},
	)
}

// AsArray views the document beneath r as its element slice. Non-array
// values read empty and are immune to writes.
func AsArray[H any](r Rep[H]) Optic[H, []Value] {
	return Compose(AsValue(r), asArrayValue())
}

// nonNullValue is a guarded identity: explicit nulls are invisible to
// reads and immune to writes; anything else passes straight through.
func nonNullValue() Optic[Value, Value] {
	return NewOptic(
		func(v Value) (Value, bool) {
			if v.kind == KindNull {
				return Value{}, false
			}
			return v, true
		},
		func(v Value, f func(Value) Value) Value {
			if v.kind == KindNull {
				return v
			}
			return f(v)
		},
	)
}

// NonNull is AsValue with explicit nulls filtered out. Composed after a
// key or index optic it skips optional fields that are present but null,
// without a separate branch at every call site.
func NonNull[H any](r Rep[H]) Optic[H, Value] {
	return Compose(AsValue(r), nonNullValue())
}
