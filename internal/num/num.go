// Package num holds the conversions between the exact decimal number
// representation and its derived float64 / big-integer views. This package
// is internal and not part of the public API.
package num

import (
	"math"
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd/v2"
)

// Parse parses a JSON numeric literal into an exact decimal. NaN and
// infinity forms are rejected; JSON numbers are always finite.
func Parse(s string) (*apd.Decimal, bool) {
	d, _, err := apd.NewFromString(s)
	if err != nil || d.Form != apd.Finite {
		return nil, false
	}
	return d, true
}

// ToFloat64 rounds d to the nearest float64. Decimals beyond the float64
// range report false.
func ToFloat64(d *apd.Decimal) (float64, bool) {
	f, err := d.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

// FromFloat64 converts f to a decimal through its shortest decimal
// rendering. Doubles without a finite decimal expansion take the value of
// that rendering; this direction is best effort. Non-finite floats report
// false.
func FromFloat64(f float64) (*apd.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return Parse(strconv.FormatFloat(f, 'g', -1, 64))
}

// FloorBigInt floors d toward negative infinity, so -10.5 becomes -11.
func FloorBigInt(d *apd.Decimal) *big.Int {
	i := new(big.Int).Set(&d.Coeff)
	if d.Negative {
		i.Neg(i)
	}
	exp := int64(d.Exponent)
	if exp >= 0 {
		return i.Mul(i, pow10(exp))
	}
	q, r := new(big.Int).QuoRem(i, pow10(-exp), new(big.Int))
	if i.Sign() < 0 && r.Sign() != 0 {
		q.Sub(q, big.NewInt(1))
	}
	return q
}

// FromBigInt promotes an integer to an exact decimal.
func FromBigInt(i *big.Int) *apd.Decimal {
	d := new(apd.Decimal)
	d.Coeff.Set(i)
	if d.Coeff.Sign() < 0 {
		d.Negative = true
		d.Coeff.Neg(&d.Coeff)
	}
	return d
}

// CanonKey renders d so that numerically equal decimals render to the same
// string, for hashing.
func CanonKey(d *apd.Decimal) string {
	var r apd.Decimal
	r.Reduce(d)
	if r.IsZero() {
		return "0"
	}
	return r.Text('E')
}

func pow10(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}
