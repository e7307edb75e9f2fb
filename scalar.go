package seriesmath

// Float is satisfied by the built-in floating-point types and any named type
// defined over them.
type Float interface {
	~float32 | ~float64
}

// Arith is the arithmetic capability set the approximations need from a
// scalar type: construction from a float literal, the four operators and
// negation.
//
// Go has no operator overloading, so user-defined scalars (fixed point,
// dual numbers, ...) pass their arithmetic as a dictionary. Built-in floats
// use FloatArith.
type Arith[T any] interface {
	FromFloat(f float64) T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	Neg(a T) T
}

// FloatArith implements Arith with Go's native operators.
type FloatArith[T Float] struct{}

func (FloatArith[T]) FromFloat(f float64) T { return T(f) }
func (FloatArith[T]) Add(a, b T) T         { return a + b }
func (FloatArith[T]) Sub(a, b T) T         { return a - b }
func (FloatArith[T]) Mul(a, b T) T         { return a * b }
func (FloatArith[T]) Div(a, b T) T         { return a / b }
func (FloatArith[T]) Neg(a T) T            { return -a }

// DefaultPrecision is the term or iteration count used when a call passes
// Default.
const DefaultPrecision = 100

// Precision is the exact number of series terms (sin, cos, ln, exp) or
// iterations (sqrt, root) an approximation performs. It is a count, not a
// tolerance: there is no early exit on convergence.
//
// Every negative value means the count was not given and resolves to
// DefaultPrecision, so Precision(-5) behaves exactly like Default. Zero is a
// valid count.
type Precision int

// Default selects DefaultPrecision. Any negative Precision does the same.
const Default Precision = -1

// Count resolves p to a concrete count. Negative values mean "not given".
func (p Precision) Count() int {
	if p < 0 {
		return DefaultPrecision
	}
	return int(p)
}
