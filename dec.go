package isodur

/*
dec.go contains decimal field helpers shared by the parser, the
formatter and the arithmetic engine.
*/

import (
	"math"
	"math/bits"

	"github.com/govalues/decimal"
)

/*
isWhole returns a Boolean value indicative of field holding a whole
number. Trailing fractional zeros do not disqualify a field: 2.0 is
whole.
*/
func isWhole(field decimal.Decimal) bool {
	return field.Trim(0).Scale() == 0
}

/*
wholeInt64 returns the numeric value of field as an int64 when field
holds a whole number. ok is false when a fraction is present or the
magnitude exceeds the int64 range.
*/
func wholeInt64(field decimal.Decimal) (n int64, ok bool) {
	t := field.Trim(0)
	if t.Scale() > 0 {
		return 0, false
	}
	n, _, ok = t.Int64(0)
	return
}

/*
fieldNanos converts a single decimal field into nanoseconds, where
factor expresses the nanosecond length of one unit. Sub-nanosecond
residue truncates toward zero. ok is false when the result exceeds
the int64 range.
*/
func fieldNanos(field decimal.Decimal, factor int64) (nanos int64, ok bool) {
	if field.Coef() == 0 {
		return 0, true
	}

	scale := field.Scale()
	w, f, k := field.Int64(scale)
	if !k {
		return 0, false
	}

	var wn, fn int64
	if wn, ok = mulNanos(w, factor); !ok {
		return 0, false
	}
	if fn, ok = fracNanos(f, scale, factor); !ok {
		return 0, false
	}

	return addNanos(wn, fn)
}

func mulNanos(w, factor int64) (int64, bool) {
	if w == 0 {
		return 0, true
	}

	u := uint64(w)
	neg := w < 0
	if neg {
		u = uint64(-w)
	}
	if u > uint64(math.MaxInt64)/uint64(factor) {
		return 0, false
	}

	n := int64(u) * factor
	if neg {
		n = -n
	}
	return n, true
}

func fracNanos(f int64, scale int, factor int64) (int64, bool) {
	if f == 0 {
		return 0, true
	}

	u := uint64(f)
	neg := f < 0
	if neg {
		u = uint64(-f)
	}

	for scale > 0 && factor%10 == 0 {
		factor /= 10
		scale--
	}

	if scale == 0 {
		if u > uint64(math.MaxInt64)/uint64(factor) {
			return 0, false
		}
		n := int64(u) * factor
		if neg {
			n = -n
		}
		return n, true
	}

	// widen to 128 bits so truncation loses sub-nanosecond
	// residue only, never whole nanoseconds
	hi, lo := bits.Mul64(u, uint64(factor))
	p10 := pow10u(scale)
	if hi >= p10 {
		return 0, false
	}

	q, _ := bits.Div64(hi, lo, p10)
	if q > uint64(math.MaxInt64) {
		return 0, false
	}

	n := int64(q)
	if neg {
		n = -n
	}
	return n, true
}

func pow10u(n int) (p uint64) {
	for p = 1; n > 0; n-- {
		p *= 10
	}
	return
}

func addNanos(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

/*
splitWholeFrac decomposes field into its integral part and the
nanosecond value of its fractional remainder, where factor expresses
the nanosecond length of one unit. ok is false when either part
exceeds the int64 range.
*/
func splitWholeFrac(field decimal.Decimal, factor int64) (whole, nanos int64, ok bool) {
	if field.Coef() == 0 {
		return 0, 0, true
	}

	scale := field.Scale()
	w, f, k := field.Int64(scale)
	if !k {
		return 0, 0, false
	}

	n, k := fracNanos(f, scale, factor)
	if !k {
		return 0, 0, false
	}

	return w, n, true
}
