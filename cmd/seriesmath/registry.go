package main

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/samber/lo"

	"github.com/alexshd/seriesmath"
)

// function is a registered approximation reachable from the command line.
type function struct {
	usage     string
	arity     int
	eval      func(args []float64, p seriesmath.Precision) (float64, error)
	reference func(args []float64) float64
}

var registry = map[string]function{
	"sin": {
		usage:     "sin <radians>",
		arity:     1,
		eval:      unchecked(seriesmath.Sin[float64]),
		reference: func(a []float64) float64 { return math.Sin(a[0]) },
	},
	"cos": {
		usage:     "cos <radians>",
		arity:     1,
		eval:      unchecked(seriesmath.Cos[float64]),
		reference: func(a []float64) float64 { return math.Cos(a[0]) },
	},
	"sindeg": {
		usage: "sindeg <degrees>",
		arity: 1,
		eval: func(a []float64, p seriesmath.Precision) (float64, error) {
			return seriesmath.Deg(a[0]).Radians().Sin(p), nil
		},
		reference: func(a []float64) float64 { return math.Sin(a[0] * math.Pi / 180) },
	},
	"cosdeg": {
		usage: "cosdeg <degrees>",
		arity: 1,
		eval: func(a []float64, p seriesmath.Precision) (float64, error) {
			return seriesmath.Deg(a[0]).Radians().Cos(p), nil
		},
		reference: func(a []float64) float64 { return math.Cos(a[0] * math.Pi / 180) },
	},
	"ln": {
		usage:     "ln <x>",
		arity:     1,
		eval:      checked(seriesmath.CheckedLn[float64]),
		reference: func(a []float64) float64 { return math.Log(a[0]) },
	},
	"lg": {
		usage:     "lg <x>",
		arity:     1,
		eval:      checked(seriesmath.CheckedLg[float64]),
		reference: func(a []float64) float64 { return math.Log10(a[0]) },
	},
	"lb": {
		usage:     "lb <x>",
		arity:     1,
		eval:      checked(seriesmath.CheckedLb[float64]),
		reference: func(a []float64) float64 { return math.Log2(a[0]) },
	},
	"log": {
		usage: "log <x> <base>",
		arity: 2,
		eval: func(a []float64, p seriesmath.Precision) (float64, error) {
			return seriesmath.CheckedLog(a[0], a[1], p)
		},
		reference: func(a []float64) float64 { return math.Log(a[0]) / math.Log(a[1]) },
	},
	"exp": {
		usage:     "exp <x>",
		arity:     1,
		eval:      unchecked(seriesmath.Exp[float64]),
		reference: func(a []float64) float64 { return math.Exp(a[0]) },
	},
	"pow": {
		usage: "pow <x> <n>",
		arity: 2,
		eval: func(a []float64, _ seriesmath.Precision) (float64, error) {
			n, err := degree(a[1])
			if err != nil {
				return 0, err
			}
			return seriesmath.Pow(a[0], n), nil
		},
		reference: func(a []float64) float64 { return math.Pow(a[0], a[1]) },
	},
	"powf": {
		usage: "powf <x> <exponent>",
		arity: 2,
		eval: func(a []float64, p seriesmath.Precision) (float64, error) {
			return seriesmath.CheckedPowf(a[0], a[1], p)
		},
		reference: func(a []float64) float64 { return math.Pow(a[0], a[1]) },
	},
	"sqrt": {
		usage:     "sqrt <x>",
		arity:     1,
		eval:      checked(seriesmath.CheckedSqrt[float64]),
		reference: func(a []float64) float64 { return math.Sqrt(a[0]) },
	},
	"root": {
		usage: "root <x> <n>",
		arity: 2,
		eval: func(a []float64, p seriesmath.Precision) (float64, error) {
			n, err := degree(a[1])
			if err != nil {
				return 0, err
			}
			return seriesmath.CheckedRoot(a[0], n, p)
		},
		reference: func(a []float64) float64 { return math.Pow(a[0], 1/a[1]) },
	},
}

func unchecked(f func(float64, seriesmath.Precision) float64) func([]float64, seriesmath.Precision) (float64, error) {
	return func(a []float64, p seriesmath.Precision) (float64, error) {
		return f(a[0], p), nil
	}
}

func checked(f func(float64, seriesmath.Precision) (float64, error)) func([]float64, seriesmath.Precision) (float64, error) {
	return func(a []float64, p seriesmath.Precision) (float64, error) {
		return f(a[0], p)
	}
}

// degree converts an integer-valued argument to an exponent or root degree.
func degree(x float64) (uint, error) {
	if x < 0 || x != math.Trunc(x) || x > math.MaxUint32 {
		return 0, fmt.Errorf("degree must be a non-negative integer, got %g", x)
	}
	return uint(x), nil
}

// functionNames lists the registry in sorted order.
func functionNames() []string {
	names := lo.Keys(registry)
	slices.Sort(names)
	return names
}

// lookup resolves a function by name and parses its arguments.
func lookup(name string, rawArgs []string) (function, []float64, error) {
	fn, ok := registry[name]
	if !ok {
		return function{}, nil, fmt.Errorf("unknown function %q (see 'seriesmath list')", name)
	}
	if len(rawArgs) != fn.arity {
		return function{}, nil, fmt.Errorf("%s takes %d argument(s), got %d: usage %q",
			name, fn.arity, len(rawArgs), fn.usage)
	}

	args := make([]float64, len(rawArgs))
	for i, raw := range rawArgs {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return function{}, nil, fmt.Errorf("argument %d of %s: %w", i+1, name, err)
		}
		args[i] = v
	}
	return fn, args, nil
}
