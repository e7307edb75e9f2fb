// Package seriesmath computes elementary functions from first principles:
// series expansions and fixed-count iteration, with no call into the math
// package on the evaluation path.
//
// # Overview
//
// Every approximation is one of two shapes:
//
//   - a finite series Σ_{i=0}^{n-1} term(i), evaluated by Sum
//   - a refinement x ← f(x) applied exactly n times, evaluated by Iterate
//
// The function families built on them:
//
//   - Sin, Cos       - Maclaurin series with a shared term recurrence
//   - Ln             - 2·artanh((x-1)/(x+1)) power series
//   - Lg, Lb, Log    - rescalings of Ln (base 10, base 2, change of base)
//   - Exp            - Maclaurin series Σ xⁿ/n!
//   - Pow            - repeated multiplication (integer exponent)
//   - Powf           - Exp(e·Ln(x)) (real exponent)
//   - Sqrt           - Babylonian iteration
//   - Root           - Newton iteration on aⁿ = x
//
// # Precision
//
// Precision is a count, not a tolerance. For series it is the number of
// terms, for iterations the number of steps. Pass Default to use
// DefaultPrecision (100):
//
//	s := seriesmath.Sin(math.Pi/3, seriesmath.Default)
//	l := seriesmath.Ln(2.0, 40)
//
// There is no early exit: the same precision always performs the same
// arithmetic and produces the same bits. Higher precision never hurts
// accuracy but costs linearly more work.
//
// # Scalar Types
//
// The plain functions accept any type whose underlying type is float32 or
// float64. For other scalars (fixed point, dual numbers, ...) implement
// Arith and call the With variants:
//
//	type fixedArith struct{}
//	func (fixedArith) FromFloat(f float64) Fixed { ... }
//	func (fixedArith) Add(a, b Fixed) Fixed      { ... }
//	...
//
//	y := seriesmath.ExpWith[Fixed](fixedArith{}, x, seriesmath.Default)
//
// # Domains
//
// Inputs outside a function's domain (Ln of a non-positive number, Sqrt of
// zero, ...) are not rejected; they yield whatever the arithmetic produces.
// The Checked variants (CheckedLn, CheckedSqrt, ...) return a *DomainError
// matching ErrDomain instead, and otherwise return exactly the unchecked
// result.
//
// Sin and Cos do not reduce their argument modulo 2π. Large arguments need
// more precision and still lose accuracy to cancellation.
//
// # Angles
//
// Degrees and Radians are distinct wrapper types. The only way between them
// is an explicit conversion:
//
//	rad := seriesmath.Deg(60.0).Radians()
//	fmt.Println(rad.Sin(seriesmath.Default))
//
// # Convergence
//
// Run sweeps an approximation over several precision levels against a
// reference value, and FitConvergence fits the error decay:
//
//	f := func(p seriesmath.Precision) float64 { return seriesmath.Exp(1.0, p) }
//	results, err := seriesmath.Run(ctx, f, math.E, seriesmath.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rate, err := seriesmath.FitConvergence(results)
//
// # Testing
//
// Use assertions to validate accuracy properties:
//
//	func TestMyApproximation(t *testing.T) {
//	    results, _ := seriesmath.Run(ctx, f, want, cfg)
//
//	    seriesmath.AssertNonIncreasingError(t, results, seriesmath.DefaultAssertionConfig())
//	    seriesmath.AssertConverged(t, results, seriesmath.DefaultAssertionConfig())
//	}
//
// # See Also
//
//   - cmd/seriesmath - command-line evaluation and convergence sweeps
//   - examples/     - Working code samples
package seriesmath
