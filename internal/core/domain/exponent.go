package domain

import (
	"fmt"
	"strconv"
)

// Exponent is a reduced rational exponent attached to a factor inside a
// derived expression. The zero value is the (invalid) zero exponent;
// normalization removes factors whose exponent sums to zero, so a zero
// exponent never survives inside a normalized expression.
type Exponent struct {
	// Num is the numerator. It carries the sign.
	Num int

	// Den is the denominator, always positive.
	Den int
}

// ExpInt returns the integer exponent n.
func ExpInt(n int) Exponent {
	return Exponent{Num: n, Den: 1}
}

// ExpOne is the neutral first power.
var ExpOne = ExpInt(1)

// NewExponent builds a reduced rational exponent num/den.
// A zero denominator is rejected.
func NewExponent(num, den int) (Exponent, error) {
	if den == 0 {
		return Exponent{}, fmt.Errorf("%w: %d/0", ErrZeroExponent, num)
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	if g > 1 {
		num, den = num/g, den/g
	}
	return Exponent{Num: num, Den: den}, nil
}

// Add returns e + o in reduced form.
func (e Exponent) Add(o Exponent) Exponent {
	r, _ := NewExponent(e.Num*o.Den+o.Num*e.Den, e.Den*o.Den)
	return r
}

// Neg returns -e.
func (e Exponent) Neg() Exponent {
	return Exponent{Num: -e.Num, Den: e.Den}
}

// Mul returns e * o in reduced form. Used when raising a power node to
// a further power.
func (e Exponent) Mul(o Exponent) Exponent {
	r, _ := NewExponent(e.Num*o.Num, e.Den*o.Den)
	return r
}

// IsZero reports whether the exponent is zero.
func (e Exponent) IsZero() bool { return e.Num == 0 }

// IsOne reports whether the exponent is exactly one.
func (e Exponent) IsOne() bool { return e.Num == 1 && e.Den == 1 }

// Positive reports whether the exponent is greater than zero.
func (e Exponent) Positive() bool { return e.Num > 0 }

// Float returns the exponent as a float64, for scale-chain arithmetic.
func (e Exponent) Float() float64 {
	return float64(e.Num) / float64(e.Den)
}

// String renders the exponent as "n" or "n/d".
func (e Exponent) String() string {
	if e.Den == 1 {
		return strconv.Itoa(e.Num)
	}
	return strconv.Itoa(e.Num) + "/" + strconv.Itoa(e.Den)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
