package jsonlens

import (
	j "github.com/goccy/go-json"
)

// Encoded bridges a host representation and an arbitrary serializable T.
// The read direction parses the host into a Value and attempts a typed
// decode of T from it; a malformed document and a shape mismatch both read
// empty. The write direction re-encodes T into a Value and serializes it
// back, fully replacing the host document. Decode diagnostics are absorbed
// on purpose: callers who need them must run the decode outside the optic.
func Encoded[T any, H any](r Rep[H]) Optic[H, T] {
	return NewOptic(
		func(h H) (T, bool) {
			var zero T
			v, ok := r.Decode(h)
			if !ok {
				return zero, false
			}
			return decodeAs[T](v)
		},
		func(h H, f func(T) T) H {
			v, ok := r.Decode(h)
			if !ok {
				return h
			}
			t, ok := decodeAs[T](v)
			if !ok {
				return h
			}
			nv, ok := encodeAs(f(t))
			if !ok {
				return h
			}
			return r.Encode(nv)
		},
	)
}

// decodeAs attempts the typed decode of T from an already-parsed tree.
func decodeAs[T any](v Value) (T, bool) {
	var t T
	if err := j.Unmarshal(appendValue(nil, v), &t); err != nil {
		var zero T
		return zero, false
	}
	return t, true
}

// encodeAs turns t back into a Value.
func encodeAs[T any](t T) (Value, bool) {
	raw, err := j.Marshal(t)
	if err != nil {
		return Value{}, false
	}
	return parseValue(raw)
}
