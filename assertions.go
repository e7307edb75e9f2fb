package seriesmath

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// AssertionConfig contains thresholds for accuracy properties.
type AssertionConfig struct {
	// Absolute tolerance (applies near zero)
	AbsTol float64

	// Relative tolerance (applies away from zero)
	RelTol float64

	// Slack allowed when checking that error never grows with precision.
	// Absorbs last-bit rounding once a series has converged.
	Slack float64
}

// DefaultAssertionConfig returns thresholds suited to float64 results at
// DefaultPrecision.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		AbsTol: 1e-12,
		RelTol: 1e-12,
		Slack:  1e-15,
	}
}

// AssertClose verifies got is within the absolute or relative tolerance of
// want.
func AssertClose(t *testing.T, name string, got, want float64, cfg AssertionConfig) {
	t.Helper()

	if !scalar.EqualWithinAbsOrRel(got, want, cfg.AbsTol, cfg.RelTol) {
		t.Errorf("%s = %.17g, want %.17g (|Δ| = %.3g, abs tol %.1g, rel tol %.1g)",
			name, got, want, math.Abs(got-want), cfg.AbsTol, cfg.RelTol)
		return
	}

	t.Logf("✓ %s = %.17g (|Δ| = %.3g)", name, got, math.Abs(got-want))
}

// AssertNonIncreasingError verifies the error never grows as precision
// increases.
//
// Results must be ordered by ascending precision, as Run returns them for
// ascending Levels.
func AssertNonIncreasingError(t *testing.T, results []Result, cfg AssertionConfig) {
	t.Helper()

	var failures []string
	for i := 1; i < len(results); i++ {
		prev, curr := results[i-1], results[i]
		if curr.Precision < prev.Precision {
			t.Fatalf("results not ordered by precision: %d before %d", prev.Precision, curr.Precision)
		}
		if curr.AbsError > prev.AbsError+cfg.Slack {
			failures = append(failures, fmt.Sprintf(
				"  p=%d→%d: error %.3g → %.3g",
				prev.Precision, curr.Precision, prev.AbsError, curr.AbsError))
		}
	}

	if len(failures) > 0 {
		t.Errorf("Error grew with precision:\n%s", failures)
		return
	}

	if len(results) > 0 {
		last := results[len(results)-1]
		t.Logf("✓ Error non-increasing over %d levels (final p=%d, error %.3g)",
			len(results), last.Precision, last.AbsError)
	}
}

// AssertConverged verifies the highest-precision result is within tolerance
// of the reference.
func AssertConverged(t *testing.T, results []Result, cfg AssertionConfig) {
	t.Helper()

	if len(results) == 0 {
		t.Fatalf("no results to check")
	}

	last := results[len(results)-1]
	if last.AbsError > cfg.AbsTol && last.RelError > cfg.RelTol {
		t.Errorf("Not converged at p=%d: abs error %.3g (tol %.1g), rel error %.3g (tol %.1g)",
			last.Precision, last.AbsError, cfg.AbsTol, last.RelError, cfg.RelTol)
		return
	}

	t.Logf("✓ Converged at p=%d: abs error %.3g", last.Precision, last.AbsError)
}

// PrintAnalysis outputs the sweep table and the fitted rate to the test log.
func PrintAnalysis(t *testing.T, results []Result) {
	t.Helper()

	t.Logf("\n=== Convergence Analysis ===")
	t.Logf("  p     Value                   Abs error    Time")
	t.Logf("  ----  ----------------------  -----------  ----------")
	for _, r := range results {
		t.Logf("  %-4d  %22.17g  %11.3g  %10v", r.Precision, r.Value, r.AbsError, r.Duration)
	}

	rate, err := FitConvergence(results)
	if err != nil {
		t.Logf("\nNo rate fit: %v", err)
		return
	}

	t.Logf("\nRate:")
	t.Logf("  slope      = %.4f digits per step", -rate.Slope)
	t.Logf("  intercept  = %.4f", rate.Intercept)
	t.Logf("  R²         = %.4f over %d levels", rate.RSquared, rate.Points)
}
