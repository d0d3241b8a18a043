package jsonlens

import (
	"hash"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/cockroachdb/apd/v2"

	"github.com/reoring/jsonlens/internal/num"
)

// Kind identifies the case held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "<invalid>"
	}
}

// Member is a single key/value entry of an object.
type Member struct {
	Key   string
	Value Value
}

// Members is the ordered entry sequence of an object. Keys are unique and
// insertion order is preserved so that documents round-trip byte-for-byte.
type Members []Member

// Lookup returns the value stored under key, if present.
func (ms Members) Lookup(key string) (Value, bool) {
	for _, m := range ms {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Keys returns the keys in insertion order.
func (ms Members) Keys() []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Key
	}
	return out
}

// Value is an immutable JSON value: one of null, bool, number, string,
// array, or object. The zero Value is null. Numbers carry an exact base-10
// decimal so that literals such as 10 survive a round trip unchanged.
//
// Values are never mutated in place; every transformation in this package
// allocates a fresh Value and leaves its input intact.
type Value struct {
	kind Kind
	str  string
	num  *apd.Decimal
	b    bool
	arr  []Value
	obj  Members
}

// NullValue returns the JSON null value.
func NullValue() Value { return Value{} }

// BoolValue returns a JSON boolean.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// StringValue returns a JSON string.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// NumberValue returns a JSON number holding a copy of d. A nil d yields the
// number zero.
func NumberValue(d *apd.Decimal) Value {
	c := new(apd.Decimal)
	if d != nil {
		c.Set(d)
	}
	return Value{kind: KindNumber, num: c}
}

// NumberString parses a JSON numeric literal into a number Value. It
// reports false for anything that is not a finite decimal literal.
func NumberString(s string) (Value, bool) {
	d, ok := num.Parse(s)
	if !ok {
		return Value{}, false
	}
	return Value{kind: KindNumber, num: d}, true
}

// ArrayValue returns a JSON array of the given elements.
func ArrayValue(elems ...Value) Value {
	arr := make([]Value, len(elems))
	copy(arr, elems)
	return Value{kind: KindArray, arr: arr}
}

// ObjectValue returns a JSON object with the given members. A repeated key
// keeps the position of its first occurrence and the value of its last, so
// the key set of the result is always unique.
func ObjectValue(members ...Member) Value {
	return objectOf(Members(members))
}

// objectOf builds an object from ms, deduplicating keys. The result owns
// a fresh member slice so later caller-side mutation cannot leak in.
func objectOf(ms Members) Value {
	out := make(Members, 0, len(ms))
	for _, m := range ms {
		if i := indexOfKey(out, m.Key); i >= 0 {
			out[i].Value = m.Value
			continue
		}
		out = append(out, m)
	}
	return Value{kind: KindObject, obj: out}
}

func indexOfKey(ms Members, key string) int {
	for i, m := range ms {
		if m.Key == key {
			return i
		}
	}
	return -1
}

// Kind reports which case the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is the JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the string payload. It is the empty string for other kinds.
func (v Value) Str() string { return v.str }

// Boolean returns the bool payload. It is false for other kinds.
func (v Value) Boolean() bool { return v.b }

// Decimal returns a copy of the number payload, or zero for other kinds.
// The caller owns the copy and may mutate it freely.
func (v Value) Decimal() *apd.Decimal {
	c := new(apd.Decimal)
	if v.num != nil {
		c.Set(v.num)
	}
	return c
}

// Elems returns a copy of the array elements, or nil for other kinds.
func (v Value) Elems() []Value {
	if v.kind != KindArray {
		return nil
	}
	return append([]Value(nil), v.arr...)
}

// Fields returns a copy of the object members in insertion order, or nil
// for other kinds.
func (v Value) Fields() Members {
	if v.kind != KindObject {
		return nil
	}
	return append(Members(nil), v.obj...)
}

// Len returns the number of elements or members, and zero for leaf kinds.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// String renders the value as compact JSON text.
func (v Value) String() string { return string(appendValue(nil, v)) }

// Equal reports structural equality. Numbers compare by numeric value, not
// by literal text, so 10 and 1e1 are equal. Objects compare by key set and
// per-key value: insertion order is preserved by storage but deliberately
// ignored here.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindString:
		return a.str == b.str
	case KindNumber:
		return a.num.Cmp(b.num) == 0
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for _, m := range a.obj {
			bv, ok := b.obj.Lookup(m.Key)
			if !ok || !Equal(m.Value, bv) {
				return false
			}
		}
		return true
	}
	return false
}

// Compare imposes a total order on values: first by kind (null < bool <
// number < string < array < object), then by payload. Objects compare by
// their key-sorted member sequences, keeping the order consistent with
// Equal's order-independence.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	switch a.kind {
	case KindNull:
		return 0
	case KindBool:
		switch {
		case a.b == b.b:
			return 0
		case b.b:
			return -1
		default:
			return 1
		}
	case KindNumber:
		return a.num.Cmp(b.num)
	case KindString:
		return strings.Compare(a.str, b.str)
	case KindArray:
		for i := 0; i < len(a.arr) && i < len(b.arr); i++ {
			if c := Compare(a.arr[i], b.arr[i]); c != 0 {
				return c
			}
		}
		return len(a.arr) - len(b.arr)
	case KindObject:
		as := sortedByKey(a.obj)
		bs := sortedByKey(b.obj)
		for i := 0; i < len(as) && i < len(bs); i++ {
			if c := strings.Compare(as[i].Key, bs[i].Key); c != 0 {
				return c
			}
			if c := Compare(as[i].Value, bs[i].Value); c != 0 {
				return c
			}
		}
		return len(as) - len(bs)
	}
	return 0
}

func sortedByKey(ms Members) Members {
	out := append(Members(nil), ms...)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Hash returns a structural hash consistent with Equal: equal values hash
// identically, including objects whose members were inserted in different
// orders and numbers written with different exponents.
func Hash(v Value) uint64 {
	return hashValue(v)
}

func hashValue(v Value) uint64 {
	h := fnv.New64a()
	switch v.kind {
	case KindNull:
		h.Write([]byte{'n'})
	case KindBool:
		if v.b {
			h.Write([]byte{'t'})
		} else {
			h.Write([]byte{'f'})
		}
	case KindNumber:
		h.Write([]byte{'d'})
		h.Write([]byte(num.CanonKey(v.num)))
	case KindString:
		h.Write([]byte{'s'})
		h.Write([]byte(v.str))
	case KindArray:
		h.Write([]byte{'a'})
		for _, e := range v.arr {
			writeUint64(h, hashValue(e))
		}
	case KindObject:
		h.Write([]byte{'o'})
		// XOR of member hashes keeps the result insertion-order independent.
		var acc uint64
		for _, m := range v.obj {
			mh := fnv.New64a()
			mh.Write([]byte(m.Key))
			writeUint64(mh, hashValue(m.Value))
			acc ^= mh.Sum64()
		}
		writeUint64(h, acc)
		writeUint64(h, uint64(len(v.obj)))
	}
	return h.Sum64()
}

func writeUint64(h hash.Hash, x uint64) {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(x >> (8 * i))
	}
	h.Write(buf[:])
}
