package seriesmath

// Sin approximates the sine of rads (radians) with the Maclaurin series
//
//	sin x = x - x³/3! + x⁵/5! - ...
//
// summed over p terms. The argument is not reduced modulo 2π, so accuracy
// drops as |rads| grows.
func Sin[T Float](rads T, p Precision) T {
	return SinWith[T](FloatArith[T]{}, rads, p)
}

// Cos approximates the cosine of rads (radians) with the Maclaurin series
//
//	cos x = 1 - x²/2! + x⁴/4! - ...
//
// summed over p terms.
func Cos[T Float](rads T, p Precision) T {
	return CosWith[T](FloatArith[T]{}, rads, p)
}

// SinWith is Sin for a scalar type described by a.
func SinWith[T any](a Arith[T], rads T, p Precision) T {
	return sineCosine(a, rads, p, rads, a.FromFloat(1))
}

// CosWith is Cos for a scalar type described by a.
func CosWith[T any](a Arith[T], rads T, p Precision) T {
	return sineCosine(a, rads, p, a.FromFloat(1), a.FromFloat(0))
}

// sineCosine sums the shared recurrence of both series. Term k is built from
// term k-1 by multiplying with -x²/((fac+1)(fac+2)); fraction and fac pick
// the series (x, 1 for sine; 1, 0 for cosine).
func sineCosine[T any](a Arith[T], rads T, p Precision, fraction, fac T) T {
	negXSquared := a.Neg(a.Mul(rads, rads))
	one, two := a.FromFloat(1), a.FromFloat(2)

	return Sum[T](a, p.Count(), func(int) T {
		term := fraction
		fraction = a.Mul(fraction, negXSquared)
		fraction = a.Div(fraction, a.Mul(a.Add(fac, one), a.Add(fac, two)))
		fac = a.Add(fac, two)
		return term
	})
}
