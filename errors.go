package seriesmath

import (
	"errors"
	"fmt"
)

// ErrDomain is matched (via errors.Is) by every DomainError.
var ErrDomain = errors.New("argument outside function domain")

// DomainError reports an argument for which an approximation has no
// meaningful real result.
type DomainError struct {
	Op     string  // Function that rejected the argument
	Arg    float64 // Offending argument
	Reason string  // Human-readable constraint
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("seriesmath: %s(%g): %s", e.Op, e.Arg, e.Reason)
}

// Unwrap lets errors.Is(err, ErrDomain) match.
func (e *DomainError) Unwrap() error {
	return ErrDomain
}

func domainError[T Float](op string, arg T, reason string) error {
	return &DomainError{Op: op, Arg: float64(arg), Reason: reason}
}

// CheckedLn is Ln with a domain check: x must be positive.
// For valid input the result is identical to Ln.
func CheckedLn[T Float](x T, p Precision) (T, error) {
	if !(x > 0) {
		return 0, domainError("ln", x, "x must be > 0")
	}
	return Ln(x, p), nil
}

// CheckedLg is Lg with a domain check: x must be positive.
func CheckedLg[T Float](x T, p Precision) (T, error) {
	if !(x > 0) {
		return 0, domainError("lg", x, "x must be > 0")
	}
	return Lg(x, p), nil
}

// CheckedLb is Lb with a domain check: x must be positive.
func CheckedLb[T Float](x T, p Precision) (T, error) {
	if !(x > 0) {
		return 0, domainError("lb", x, "x must be > 0")
	}
	return Lb(x, p), nil
}

// CheckedLog is Log with a domain check: a and b must be positive and b must
// not be 1.
func CheckedLog[T Float](a, b T, p Precision) (T, error) {
	switch {
	case !(a > 0):
		return 0, domainError("log", a, "a must be > 0")
	case !(b > 0):
		return 0, domainError("log", b, "base must be > 0")
	case b == 1:
		return 0, domainError("log", b, "base must not be 1")
	}
	return Log(a, b, p), nil
}

// CheckedPowf is Powf with a domain check: x must not be negative.
// x == 0 is accepted because the unchecked formula stays finite there.
func CheckedPowf[T Float](x, e T, p Precision) (T, error) {
	if !(x >= 0) {
		return 0, domainError("powf", x, "x must be >= 0")
	}
	return Powf(x, e, p), nil
}

// CheckedSqrt is Sqrt with a domain check: x must be positive. Zero is
// rejected because the first iteration divides by it.
func CheckedSqrt[T Float](x T, p Precision) (T, error) {
	if !(x > 0) {
		return 0, domainError("sqrt", x, "x must be > 0")
	}
	return Sqrt(x, p), nil
}

// CheckedRoot is Root with a domain check: n must be at least 1 and x must
// be positive.
func CheckedRoot[T Float](x T, n uint, p Precision) (T, error) {
	if n == 0 {
		return 0, domainError("root", x, "degree must be >= 1")
	}
	if !(x > 0) {
		return 0, domainError("root", x, "x must be > 0")
	}
	return Root(x, n, p), nil
}
