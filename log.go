package seriesmath

import "math"

// Ln approximates the natural logarithm of x using
//
//	ln x = 2·artanh(u) = 2·(u + u³/3 + u⁵/5 + ...),  u = (x-1)/(x+1)
//
// summed over p terms. x must be positive for a meaningful result; other
// inputs are not rejected and yield whatever the formula produces (see
// CheckedLn).
func Ln[T Float](x T, p Precision) T {
	return LnWith[T](FloatArith[T]{}, x, p)
}

// Lg approximates the common (base 10) logarithm of x.
func Lg[T Float](x T, p Precision) T {
	return LgWith[T](FloatArith[T]{}, x, p)
}

// Lb approximates the binary (base 2) logarithm of x.
func Lb[T Float](x T, p Precision) T {
	return LbWith[T](FloatArith[T]{}, x, p)
}

// Log approximates the logarithm of a to base b as Ln(a)/Ln(b). A base whose
// logarithm evaluates to zero (b == 1) produces an infinite or NaN result.
func Log[T Float](a, b T, p Precision) T {
	return LogWith[T](FloatArith[T]{}, a, b, p)
}

// LnWith is Ln for a scalar type described by a.
func LnWith[T any](a Arith[T], x T, p Precision) T {
	one := a.FromFloat(1)
	two := a.FromFloat(2)

	u := a.Div(a.Sub(x, one), a.Add(x, one))
	uu := a.Mul(u, u)
	fraction := u
	divisor := one

	sum := Sum[T](a, p.Count(), func(int) T {
		term := a.Div(fraction, divisor)
		divisor = a.Add(divisor, two)
		fraction = a.Mul(fraction, uu)
		return term
	})
	return a.Mul(two, sum)
}

// LgWith is Lg for a scalar type described by a.
func LgWith[T any](a Arith[T], x T, p Precision) T {
	return a.Mul(LnWith(a, x, p), a.FromFloat(math.Log10E))
}

// LbWith is Lb for a scalar type described by a.
func LbWith[T any](a Arith[T], x T, p Precision) T {
	return a.Mul(LnWith(a, x, p), a.FromFloat(math.Log2E))
}

// LogWith is Log for a scalar type described by a.
func LogWith[T any](a Arith[T], x, base T, p Precision) T {
	return a.Div(LnWith(a, x, p), LnWith(a, base, p))
}
