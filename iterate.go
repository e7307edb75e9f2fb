package seriesmath

// StepFunction is one refinement of an estimate: x_{n+1} = f(x_n).
type StepFunction[T any] func(x T) T

// Iterate applies step to x0 exactly n times and returns the final estimate.
// There is no convergence test; the same n always produces the same result.
func Iterate[T any](n int, x0 T, step StepFunction[T]) T {
	x := x0
	for i := 0; i < n; i++ {
		x = step(x)
	}
	return x
}

// Trajectory runs the same iteration as Iterate and records every estimate.
// The last element equals Iterate(n, x0, step). For n <= 0 it returns an
// empty slice.
func Trajectory[T any](n int, x0 T, step StepFunction[T]) []T {
	if n <= 0 {
		return []T{}
	}
	trajectory := make([]T, 0, n)
	x := x0
	for i := 0; i < n; i++ {
		x = step(x)
		trajectory = append(trajectory, x)
	}
	return trajectory
}
