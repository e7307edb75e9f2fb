package seriesmath

import "fmt"

// Sqrt approximates the square root of x with the Babylonian (Heron)
// iteration r = (r + x/r)/2, starting from r = x and run exactly p times.
//
// x == 0 divides by zero on the first step and x < 0 never converges; neither
// is rejected (see CheckedSqrt).
func Sqrt[T Float](x T, p Precision) T {
	return SqrtWith[T](FloatArith[T]{}, x, p)
}

// Root approximates the n-th root of x with Newton's method on aⁿ = x:
//
//	a ← a + (x/aⁿ⁻¹ - a)/n
//
// starting from a = x/2 and run exactly p times. aⁿ⁻¹ is computed with Pow,
// so n == 1 sees Pow(a, 0) == a and the estimate alternates between x/2 and
// 2 instead of settling on x.
//
// Root panics if n is zero.
func Root[T Float](x T, n uint, p Precision) T {
	return RootWith[T](FloatArith[T]{}, x, n, p)
}

// SqrtWith is Sqrt for a scalar type described by a.
func SqrtWith[T any](a Arith[T], x T, p Precision) T {
	half := a.FromFloat(0.5)
	return Iterate[T](p.Count(), x, func(r T) T {
		return a.Mul(half, a.Add(r, a.Div(x, r)))
	})
}

// RootWith is Root for a scalar type described by a.
func RootWith[T any](a Arith[T], x T, n uint, p Precision) T {
	if n == 0 {
		panic(fmt.Sprintf("seriesmath: zeroth root of %v is undefined", x))
	}
	degree := a.FromFloat(float64(n))
	return Iterate[T](p.Count(), a.Mul(x, a.FromFloat(0.5)), func(r T) T {
		dx := a.Div(a.Sub(a.Div(x, PowWith(a, r, n-1)), r), degree)
		return a.Add(r, dx)
	})
}
