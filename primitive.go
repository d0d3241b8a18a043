package jsonlens

import (
	"github.com/cockroachdb/apd/v2"
)

// Primitive is the non-recursive leaf subset of Value: string, number,
// bool, or null. The container kinds are not representable here, which
// lets accessors that only ever touch leaves avoid the full recursive
// union. Primitives are built on demand by projecting a Value and are
// never stored independently.
type Primitive struct {
	kind Kind
	str  string
	num  *apd.Decimal
	b    bool
}

// NullPrim returns the null primitive. It is also the zero Primitive.
func NullPrim() Primitive { return Primitive{} }

// BoolPrim returns a boolean primitive.
func BoolPrim(b bool) Primitive { return Primitive{kind: KindBool, b: b} }

// StringPrim returns a string primitive.
func StringPrim(s string) Primitive { return Primitive{kind: KindString, str: s} }

// NumberPrim returns a number primitive holding a copy of d.
func NumberPrim(d *apd.Decimal) Primitive {
	c := new(apd.Decimal)
	if d != nil {
		c.Set(d)
	}
	return Primitive{kind: KindNumber, num: c}
}

// Kind reports which leaf case the primitive holds.
func (p Primitive) Kind() Kind { return p.kind }

// Str returns the string payload, empty for other kinds.
func (p Primitive) Str() string { return p.str }

// Boolean returns the bool payload, false for other kinds.
func (p Primitive) Boolean() bool { return p.b }

// Decimal returns a copy of the number payload, zero for other kinds.
func (p Primitive) Decimal() *apd.Decimal {
	c := new(apd.Decimal)
	if p.num != nil {
		c.Set(p.num)
	}
	return c
}

// FromPrimitive embeds a primitive back into the full Value union. The
// embedding is exact: projecting a leaf Value to Primitive and back
// reconstructs the original tag and payload.
func FromPrimitive(p Primitive) Value {
	switch p.kind {
	case KindBool:
		return BoolValue(p.b)
	case KindNumber:
		return NumberValue(p.num)
	case KindString:
		return StringValue(p.str)
	default:
		return NullValue()
	}
}

// toPrimitive projects a leaf Value onto the Primitive union. Containers
// report false.
func toPrimitive(v Value) (Primitive, bool) {
	switch v.kind {
	case KindNull:
		return NullPrim(), true
	case KindBool:
		return BoolPrim(v.b), true
	case KindNumber:
		return Primitive{kind: KindNumber, num: v.num}, true
	case KindString:
		return StringPrim(v.str), true
	default:
		return Primitive{}, false
	}
}

// asPrimitiveValue is the tree-level primitive optic: leaves project onto
// the Primitive union, containers are invisible.
func asPrimitiveValue() Optic[Value, Primitive] {
	return NewOptic(
		toPrimitive,
		func(v Value, f func(Primitive) Primitive) Value {
			p, ok := toPrimitive(v)
			if !ok {
				return v
			}
			return FromPrimitive(f(p))
		},
	)
}

// AsPrimitive collapses the leaf beneath r's host representation into the
// Primitive union. Objects and arrays read empty and are immune to writes;
// Primitive never represents containers.
func AsPrimitive[H any](r Rep[H]) Optic[H, Primitive] {
	return Compose(AsValue(r), asPrimitiveValue())
}

// AsString narrows AsPrimitive to the string case.
func AsString[H any](r Rep[H]) Optic[H, string] {
	base := AsPrimitive(r)
	return NewOptic(
		func(h H) (string, bool) {
			p, ok := base.Get(h)
			if !ok || p.kind != KindString {
				return "", false
			}
			return p.str, true
		},
		func(h H, f func(string) string) H {
			return base.Modify(h, func(p Primitive) Primitive {
				if p.kind != KindString {
					return p
				}
				return StringPrim(f(p.str))
			})
		},
	)
}

// AsBool narrows AsPrimitive to the boolean case.
func AsBool[H any](r Rep[H]) Optic[H, bool] {
	base := AsPrimitive(r)
	return NewOptic(
		func(h H) (bool, bool) {
			p, ok := base.Get(h)
			if !ok || p.kind != KindBool {
				return false, false
			}
			return p.b, true
		},
		func(h H, f func(bool) bool) H {
			return base.Modify(h, func(p Primitive) Primitive {
				if p.kind != KindBool {
					return p
				}
				return BoolPrim(f(p.b))
			})
		},
	)
}

// AsNull narrows AsPrimitive to the null case. Its target is the unit
// value: presence, not a payload, so writes can only ever put null back.
func AsNull[H any](r Rep[H]) Optic[H, struct{}] {
	base := AsPrimitive(r)
	return NewOptic(
		func(h H) (struct{}, bool) {
			p, ok := base.Get(h)
			if !ok || p.kind != KindNull {
				return struct{}{}, false
			}
			return struct{}{}, true
		},
		func(h H, f func(struct{}) struct{}) H {
			return base.Modify(h, func(p Primitive) Primitive {
				if p.kind != KindNull {
					return p
				}
				f(struct{}{})
				return NullPrim()
			})
		},
	)
}
