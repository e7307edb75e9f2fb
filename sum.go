package seriesmath

// Term produces the i-th term of a series. Implementations usually capture
// and advance local state so each term is derived from the previous one.
type Term[T any] func(i int) T

// Sum evaluates Σ_{i=0}^{n-1} term(i).
//
// The term function is called exactly n times, in ascending index order, and
// the terms are accumulated left to right starting from zero. The order is
// part of the contract: it keeps floating-point results reproducible.
func Sum[T any](a Arith[T], n int, term Term[T]) T {
	return SumRange(a, 0, n, 1, term)
}

// SumRange is the general form of Sum: it visits start, start+step, ... while
// the index is below stop. A non-positive step visits nothing.
func SumRange[T any](a Arith[T], start, stop, step int, term Term[T]) T {
	sum := a.FromFloat(0)
	if step <= 0 {
		return sum
	}
	for i := start; i < stop; i += step {
		sum = a.Add(sum, term(i))
	}
	return sum
}
