package seriesmath

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"
	"time"
)

var sweepLevels = []int{1, 2, 4, 8, 16, 32, 64, 100}

// TestRun_SimpleApproximation verifies the sweep runner works.
func TestRun_SimpleApproximation(t *testing.T) {
	var calls int64

	f := func(p Precision) float64 {
		atomic.AddInt64(&calls, 1)
		return Exp(1.0, p)
	}

	cfg := DefaultConfig()
	cfg.Levels = []int{1, 5, 20}
	cfg.Repeats = 3

	results, err := Run(context.Background(), f, math.E, cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	if calls != 9 {
		t.Errorf("Expected 9 evaluations (3 levels × 3 repeats), got %d", calls)
	}

	for i, r := range results {
		if r.Precision != cfg.Levels[i] {
			t.Errorf("Result %d: precision %d, want %d", i, r.Precision, cfg.Levels[i])
		}
		if r.Value != Exp(1.0, Precision(r.Precision)) {
			t.Errorf("Result %d: value %v does not match direct evaluation", i, r.Value)
		}
	}

	e := math.E
	if results[0].AbsError != e-1 {
		t.Errorf("p=1 error = %v, want e-1", results[0].AbsError)
	}
}

// TestRun_NonIncreasingError verifies error never grows with precision for ln, exp, sin, cos.
func TestRun_NonIncreasingError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Levels = sweepLevels
	cfg.Workers = 4

	cases := []struct {
		name      string
		f         Approximation
		reference float64
	}{
		{"ln(2)", func(p Precision) float64 { return Ln(2.0, p) }, math.Ln2},
		{"ln(0.3)", func(p Precision) float64 { return Ln(0.3, p) }, math.Log(0.3)},
		{"exp(1)", func(p Precision) float64 { return Exp(1.0, p) }, math.E},
		{"exp(-0.5)", func(p Precision) float64 { return Exp(-0.5, p) }, math.Exp(-0.5)},
		{"sin(0.5)", func(p Precision) float64 { return Sin(0.5, p) }, math.Sin(0.5)},
		{"cos(0.5)", func(p Precision) float64 { return Cos(0.5, p) }, math.Cos(0.5)},
		{"sin(1)", func(p Precision) float64 { return Sin(1.0, p) }, math.Sin(1)},
		{"cos(1)", func(p Precision) float64 { return Cos(1.0, p) }, math.Cos(1)},
	}

	assertCfg := DefaultAssertionConfig()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			results, err := Run(context.Background(), tc.f, tc.reference, cfg)
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			AssertNonIncreasingError(t, results, assertCfg)
			AssertConverged(t, results, assertCfg)
		})
	}
}

// TestRun_Cancelled verifies a cancelled context stops the sweep.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, func(p Precision) float64 { return Sin(1.0, p) }, math.Sin(1), DefaultConfig())
	if err == nil {
		t.Fatal("Expected error from cancelled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

// TestRun_InvalidConfig verifies empty and negative levels are rejected.
func TestRun_InvalidConfig(t *testing.T) {
	f := func(p Precision) float64 { return Exp(1.0, p) }

	cfg := DefaultConfig()
	cfg.Levels = nil
	if _, err := Run(context.Background(), f, math.E, cfg); err == nil {
		t.Error("Expected error for empty levels")
	}

	cfg.Levels = []int{1, -2}
	if _, err := Run(context.Background(), f, math.E, cfg); err == nil {
		t.Error("Expected error for negative level")
	}
}

// TestCalculateStatistics verifies timing summaries.
func TestCalculateStatistics(t *testing.T) {
	results := []Result{
		{Duration: 100 * time.Microsecond},
		{Duration: 200 * time.Microsecond},
		{Duration: 300 * time.Microsecond},
		{Duration: 400 * time.Microsecond},
		{Duration: 500 * time.Microsecond},
	}

	stats := CalculateStatistics(results)

	if stats.P50 != 300*time.Microsecond {
		t.Errorf("P50: expected 300µs, got %v", stats.P50)
	}
	if stats.Mean != 300*time.Microsecond {
		t.Errorf("Mean: expected 300µs, got %v", stats.Mean)
	}
	if stats.Max != 500*time.Microsecond {
		t.Errorf("Max: expected 500µs, got %v", stats.Max)
	}

	if empty := CalculateStatistics(nil); empty != (Statistics{}) {
		t.Errorf("Expected zero statistics for no results, got %+v", empty)
	}

	t.Logf("Stats: mean=%v, p50=%v, p95=%v, max=%v",
		stats.Mean, stats.P50, stats.P95, stats.Max)
}

// TestFitConvergence_Synthetic verifies the fit recovers a known decay rate.
func TestFitConvergence_Synthetic(t *testing.T) {
	// error = 10^(1 - p/2): half a digit per step.
	var results []Result
	for _, p := range []int{2, 4, 6, 8, 10} {
		results = append(results, Result{Precision: p, AbsError: math.Pow(10, 1-float64(p)/2)})
	}
	results = append(results, Result{Precision: 12, AbsError: 0}) // exact, skipped

	rate, err := FitConvergence(results)
	if err != nil {
		t.Fatalf("FitConvergence failed: %v", err)
	}

	if math.Abs(rate.Slope+0.5) > 1e-9 {
		t.Errorf("Slope = %v, want -0.5", rate.Slope)
	}
	if math.Abs(rate.Intercept-1) > 1e-9 {
		t.Errorf("Intercept = %v, want 1", rate.Intercept)
	}
	if rate.Points != 5 {
		t.Errorf("Points = %d, want 5", rate.Points)
	}
	if rate.RSquared < 0.999999 {
		t.Errorf("RSquared = %v, want ≈ 1", rate.RSquared)
	}

	if p, ok := rate.PrecisionFor(2e-9); !ok || p != 20 {
		t.Errorf("PrecisionFor(2e-9) = %d, %v; want 20, true", p, ok)
	}
	if got := rate.PredictError(20); math.Abs(math.Log10(got)+9) > 1e-9 {
		t.Errorf("PredictError(20) = %v, want 1e-9", got)
	}

	t.Logf("✓ Fit: slope=%.4f, intercept=%.4f, R²=%.6f", rate.Slope, rate.Intercept, rate.RSquared)
}

// TestFitConvergence_NotEnoughPoints verifies the fit needs two usable levels.
func TestFitConvergence_NotEnoughPoints(t *testing.T) {
	results := []Result{
		{Precision: 1, AbsError: 0.1},
		{Precision: 2, AbsError: 0},
	}

	if _, err := FitConvergence(results); err == nil {
		t.Error("Expected error with a single non-zero error level")
	}
}

// TestRate_PrecisionForDiverging verifies a flat or growing fit has no answer.
func TestRate_PrecisionForDiverging(t *testing.T) {
	if _, ok := (Rate{Slope: 0.1}).PrecisionFor(1e-6); ok {
		t.Error("Expected no precision for a diverging rate")
	}
	if _, ok := (Rate{Slope: -1}).PrecisionFor(0); ok {
		t.Error("Expected no precision for a zero target")
	}
}

// TestRate_PrecisionForOutOfRange verifies a near-flat fit does not overflow int.
func TestRate_PrecisionForOutOfRange(t *testing.T) {
	for _, slope := range []float64{-1e-300, -math.SmallestNonzeroFloat64} {
		if p, ok := (Rate{Slope: slope}).PrecisionFor(1e-9); ok {
			t.Errorf("Slope %g: PrecisionFor(1e-9) = %d, true; want false", slope, p)
		}
	}

	if _, ok := (Rate{Slope: -1, Intercept: math.NaN()}).PrecisionFor(1e-9); ok {
		t.Error("Expected no precision for a NaN intercept")
	}

	if p, ok := (Rate{Slope: -1, Intercept: -20}).PrecisionFor(1e-9); !ok || p != 0 {
		t.Errorf("PrecisionFor(1e-9) = %d, %v; want 0, true when already below target", p, ok)
	}
}

// TestRun_ExpAnalysis prints a full analysis for exp(1).
func TestRun_ExpAnalysis(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Levels = []int{1, 2, 3, 4, 5, 6, 8, 10, 12}

	results, err := Run(context.Background(), func(p Precision) float64 { return Exp(1.0, p) }, math.E, cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	rate, err := FitConvergence(results)
	if err != nil {
		t.Fatalf("FitConvergence failed: %v", err)
	}
	if rate.Slope >= 0 {
		t.Errorf("Expected a converging rate, got slope %v", rate.Slope)
	}

	PrintAnalysis(t, results)
}
