package jsonlens

import (
	"math/big"

	"github.com/cockroachdb/apd/v2"

	"github.com/reoring/jsonlens/internal/num"
)

// asNumberValue is the tree-level number optic: it matches only number
// values; every other kind reads empty and is immune to writes.
func asNumberValue() Optic[Value, *apd.Decimal] {
	return NewOptic(
		func(v Value) (*apd.Decimal, bool) {
			if v.kind != KindNumber {
				return nil, false
			}
			return v.Decimal(), true
		},
		func(v Value, f func(*apd.Decimal) *apd.Decimal) Value {
			if v.kind != KindNumber {
				return v
			}
			return NumberValue(f(v.Decimal()))
		},
	)
}

// AsNumber views the number beneath r's host representation as an exact
// decimal. The focused decimal is a copy the callback owns outright.
func AsNumber[H any](r Rep[H]) Optic[H, *apd.Decimal] {
	return Compose(AsValue(r), asNumberValue())
}

// AsFloat64 is AsNumber converted to float64 at the boundary. Reads round
// to nearest; writes convert back through the float's shortest decimal
// rendering, which is best effort for doubles without a finite decimal
// expansion. Decimals outside the float64 range read empty, and a callback
// that produces NaN or an infinity leaves the host unchanged.
func AsFloat64[H any](r Rep[H]) Optic[H, float64] {
	base := AsNumber(r)
	return NewOptic(
		func(h H) (float64, bool) {
			d, ok := base.Get(h)
			if !ok {
				return 0, false
			}
			return num.ToFloat64(d)
		},
		func(h H, f func(float64) float64) H {
			return base.Modify(h, func(d *apd.Decimal) *apd.Decimal {
				f64, ok := num.ToFloat64(d)
				if !ok {
					return d
				}
				nd, ok := num.FromFloat64(f(f64))
				if !ok {
					return d
				}
				return nd
			})
		},
	)
}

// AsBigInt is AsNumber floored to an arbitrary-precision integer. The
// floor goes toward negative infinity, so 10.5 reads as 10 and -10.5 as
// -11. Writes promote the integer back to an exact decimal.
func AsBigInt[H any](r Rep[H]) Optic[H, *big.Int] {
	base := AsNumber(r)
	return NewOptic(
		func(h H) (*big.Int, bool) {
			d, ok := base.Get(h)
			if !ok {
				return nil, false
			}
			return num.FloorBigInt(d), true
		},
		func(h H, f func(*big.Int) *big.Int) H {
			return base.Modify(h, func(d *apd.Decimal) *apd.Decimal {
				return num.FromBigInt(f(num.FloorBigInt(d)))
			})
		},
	)
}

// Integral enumerates the fixed-width targets of AsIntegral.
type Integral interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// AsIntegral is AsBigInt narrowed to a fixed-width integer type. Numbers
// whose floor does not fit in N read empty and are immune to writes; the
// floor itself keeps AsBigInt's toward-negative-infinity semantics.
func AsIntegral[N Integral, H any](r Rep[H]) Optic[H, N] {
	base := AsBigInt(r)
	return NewOptic(
		func(h H) (N, bool) {
			i, ok := base.Get(h)
			if !ok {
				return 0, false
			}
			n, ok := fitIn[N](i)
			return n, ok
		},
		func(h H, f func(N) N) H {
			return base.Modify(h, func(i *big.Int) *big.Int {
				n, ok := fitIn[N](i)
				if !ok {
					return i
				}
				return big.NewInt(int64(f(n)))
			})
		},
	)
}

// fitIn reports whether i is exactly representable in N.
func fitIn[N Integral](i *big.Int) (N, bool) {
	if !i.IsInt64() {
		return 0, false
	}
	v := i.Int64()
	n := N(v)
	if int64(n) != v {
		return 0, false
	}
	return n, true
}
