package seriesmath

// Exp approximates e^x with the Maclaurin series Σ xⁿ/n! summed over p
// terms. The power and the factorial are carried from term to term.
func Exp[T Float](x T, p Precision) T {
	return ExpWith[T](FloatArith[T]{}, x, p)
}

// Pow raises x to the non-negative integer power n by repeated
// multiplication.
//
// The result starts at x and is multiplied by x n-1 times, so Pow(x, 0)
// returns x rather than 1. Root relies on this for n == 1.
func Pow[T Float](x T, n uint) T {
	return PowWith[T](FloatArith[T]{}, x, n)
}

// Powf approximates x^e for a real exponent as Exp(e·Ln(x)). x must be
// positive for a real result; x == 0 yields Exp(0) == 1 when e == 0.
func Powf[T Float](x, e T, p Precision) T {
	return PowfWith[T](FloatArith[T]{}, x, e, p)
}

// ExpWith is Exp for a scalar type described by a.
func ExpWith[T any](a Arith[T], x T, p Precision) T {
	one := a.FromFloat(1)
	power := one
	factorial := one
	n := a.FromFloat(0)

	return Sum[T](a, p.Count(), func(int) T {
		term := a.Div(power, factorial)
		power = a.Mul(power, x)
		n = a.Add(n, one)
		factorial = a.Mul(factorial, n)
		return term
	})
}

// PowWith is Pow for a scalar type described by a.
func PowWith[T any](a Arith[T], x T, n uint) T {
	result := x
	for i := uint(1); i < n; i++ {
		result = a.Mul(result, x)
	}
	return result
}

// PowfWith is Powf for a scalar type described by a.
func PowfWith[T any](a Arith[T], x, e T, p Precision) T {
	return ExpWith(a, a.Mul(e, LnWith(a, x, p)), p)
}
