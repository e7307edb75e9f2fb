package seriesmath

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Approximation is a precision-parameterised computation under study,
// typically a closure over one of the package functions:
//
//	f := func(p seriesmath.Precision) float64 { return seriesmath.Ln(2.0, p) }
//
// Implementations must be safe for concurrent use; every function in this
// package is.
type Approximation func(p Precision) float64

// Result contains the measurements for a single precision level.
type Result struct {
	Precision int           // Terms or iterations used
	Value     float64       // Approximated value
	AbsError  float64       // |Value - reference|
	RelError  float64       // AbsError / |reference| (AbsError if reference is 0)
	Duration  time.Duration // Median wall time of one evaluation
}

// Statistics summarises evaluation times across precision levels.
type Statistics struct {
	Mean time.Duration
	P50  time.Duration
	P95  time.Duration
	Max  time.Duration
}

// Rate is a log-linear model of convergence:
//
//	log10(absError) ≈ Intercept + Slope·precision
//
// A slope of -1 means every extra term buys one more correct decimal digit.
type Rate struct {
	Slope     float64
	Intercept float64
	RSquared  float64 // Goodness of fit (1.0 = perfect)
	Points    int     // Levels used by the fit
}

// Config controls a convergence sweep.
type Config struct {
	Levels  []int        // Precision levels to evaluate
	Workers int          // Concurrent evaluators (<= 0 means 1)
	Repeats int          // Timed evaluations per level (<= 0 means 1)
	Logger  *slog.Logger // Optional per-level debug logging
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Levels:  []int{1, 2, 5, 10, 20, 50, DefaultPrecision},
		Workers: runtime.NumCPU(),
		Repeats: 1,
	}
}

// Run evaluates f at every precision level and compares it with reference.
//
// Levels are spread over cfg.Workers goroutines; the returned results follow
// the order of cfg.Levels. If ctx is cancelled before every level has been
// evaluated, Run returns the context error.
func Run(ctx context.Context, f Approximation, reference float64, cfg Config) ([]Result, error) {
	if len(cfg.Levels) == 0 {
		return nil, fmt.Errorf("no precision levels configured")
	}
	for _, level := range cfg.Levels {
		if level < 0 {
			return nil, fmt.Errorf("invalid precision level %d", level)
		}
	}

	workers := max(cfg.Workers, 1)
	repeats := max(cfg.Repeats, 1)

	var (
		wg        sync.WaitGroup
		completed int64
		results   = make([]Result, len(cfg.Levels))
		jobs      = make(chan int)
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = evaluateLevel(f, cfg.Levels[idx], reference, repeats)
				atomic.AddInt64(&completed, 1)

				if cfg.Logger != nil {
					r := results[idx]
					cfg.Logger.Debug("level evaluated",
						"precision", r.Precision,
						"value", r.Value,
						"abs_error", r.AbsError,
						"duration", r.Duration)
				}
			}
		}()
	}

dispatch:
	for idx := range cfg.Levels {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	if int(completed) < len(cfg.Levels) {
		return nil, fmt.Errorf("sweep stopped after %d of %d levels: %w",
			completed, len(cfg.Levels), ctx.Err())
	}

	return results, nil
}

// evaluateLevel runs f at one precision and records its error and timing.
func evaluateLevel(f Approximation, level int, reference float64, repeats int) Result {
	durations := make([]time.Duration, repeats)
	var value float64

	for i := range durations {
		start := time.Now()
		value = f(Precision(level))
		durations[i] = time.Since(start)
	}

	sort.Slice(durations, func(i, j int) bool {
		return durations[i] < durations[j]
	})

	absErr := math.Abs(value - reference)
	relErr := absErr
	if reference != 0 {
		relErr = absErr / math.Abs(reference)
	}

	return Result{
		Precision: level,
		Value:     value,
		AbsError:  absErr,
		RelError:  relErr,
		Duration:  durations[len(durations)/2],
	}
}

// CalculateStatistics computes timing statistics over all levels.
func CalculateStatistics(results []Result) Statistics {
	if len(results) == 0 {
		return Statistics{}
	}

	samples := make([]float64, len(results))
	for i, r := range results {
		samples[i] = float64(r.Duration)
	}
	sort.Float64s(samples)

	return Statistics{
		Mean: time.Duration(stat.Mean(samples, nil)),
		P50:  time.Duration(stat.Quantile(0.5, stat.Empirical, samples, nil)),
		P95:  time.Duration(stat.Quantile(0.95, stat.Empirical, samples, nil)),
		Max:  time.Duration(samples[len(samples)-1]),
	}
}

// FitConvergence fits log10(AbsError) against precision by least squares.
//
// Levels whose error is exactly zero carry no slope information and are
// skipped. Once the error reaches the rounding floor of the scalar type it
// stops falling, which flattens the fit; sweep levels below that floor for a
// meaningful rate.
func FitConvergence(results []Result) (Rate, error) {
	xs := make([]float64, 0, len(results))
	ys := make([]float64, 0, len(results))

	for _, r := range results {
		if r.AbsError == 0 || math.IsNaN(r.AbsError) || math.IsInf(r.AbsError, 0) {
			continue
		}
		xs = append(xs, float64(r.Precision))
		ys = append(ys, math.Log10(r.AbsError))
	}

	if len(xs) < 2 {
		return Rate{}, fmt.Errorf("need at least 2 levels with non-zero error, got %d", len(xs))
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	rSquared := stat.RSquared(xs, ys, nil, intercept, slope)

	return Rate{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  rSquared,
		Points:    len(xs),
	}, nil
}

// PredictError estimates the absolute error at a given precision.
func (r Rate) PredictError(precision int) float64 {
	return math.Pow(10, r.Intercept+r.Slope*float64(precision))
}

// PrecisionFor estimates the smallest precision whose predicted error does
// not exceed absErr. It reports false when the fit does not converge
// (non-negative slope), absErr is not positive, or the estimate does not fit
// in an int.
func (r Rate) PrecisionFor(absErr float64) (int, bool) {
	if r.Slope >= 0 || !(absErr > 0) {
		return 0, false
	}
	p := math.Ceil((math.Log10(absErr) - r.Intercept) / r.Slope)
	if !(p < math.MaxInt) {
		return 0, false
	}
	return max(int(p), 0), true
}
