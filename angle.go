package seriesmath

import "math"

const (
	degreesPerRadian = 180 / math.Pi
	radiansPerDegree = math.Pi / 180
)

// RadToDeg converts an angle in radians to degrees.
func RadToDeg[T Float](rads T) T {
	return rads * T(degreesPerRadian)
}

// DegToRad converts an angle in degrees to radians.
func DegToRad[T Float](degs T) T {
	return degs * T(radiansPerDegree)
}

// Degrees is an angle tagged as degrees. It can only become Radians through
// the explicit Radians method.
type Degrees[T Float] struct {
	v T
}

// Radians is an angle tagged as radians. It can only become Degrees through
// the explicit Degrees method.
type Radians[T Float] struct {
	v T
}

// Deg tags x as degrees.
func Deg[T Float](x T) Degrees[T] { return Degrees[T]{v: x} }

// Rad tags x as radians.
func Rad[T Float](x T) Radians[T] { return Radians[T]{v: x} }

// Get returns the bare value in degrees.
func (d Degrees[T]) Get() T { return d.v }

// Radians converts d to radians.
func (d Degrees[T]) Radians() Radians[T] { return Radians[T]{v: DegToRad(d.v)} }

// Get returns the bare value in radians.
func (r Radians[T]) Get() T { return r.v }

// Degrees converts r to degrees.
func (r Radians[T]) Degrees() Degrees[T] { return Degrees[T]{v: RadToDeg(r.v)} }

// Sin evaluates Sin on the tagged angle.
func (r Radians[T]) Sin(p Precision) T { return Sin(r.v, p) }

// Cos evaluates Cos on the tagged angle.
func (r Radians[T]) Cos(p Precision) T { return Cos(r.v, p) }
