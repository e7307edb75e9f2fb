package seriesmath

import (
	"math"
	"testing"
)

// TestExp_KnownValues checks the reference scenarios at default precision.
func TestExp_KnownValues(t *testing.T) {
	if got := Exp(0.0, Default); got != 1 {
		t.Errorf("Exp(0) = %v, want exactly 1", got)
	}

	cfg := AssertionConfig{AbsTol: 1e-15, RelTol: 1e-15}
	AssertClose(t, "Exp(1)", Exp(1.0, Default), 2.7182818284590455, cfg)
	AssertClose(t, "Exp(-1)", Exp(-1.0, Default), 0.36787944117144245, cfg)

	cfg.RelTol = 1e-14
	AssertClose(t, "Exp(6)", Exp(6.0, Default), 403.4287934927351, cfg)
}

// TestExp_MatchesStdlib compares the series with math.Exp.
func TestExp_MatchesStdlib(t *testing.T) {
	cfg := DefaultAssertionConfig()

	for _, x := range []float64{-3, -0.5, 0.1, 0.5, 1, 2, 5, 10} {
		AssertClose(t, "Exp", Exp(x, Default), math.Exp(x), cfg)
	}
}

// TestExp_TermCount verifies precision is the number of series terms.
func TestExp_TermCount(t *testing.T) {
	x := 0.5

	if got := Exp(x, 0); got != 0 {
		t.Errorf("Exp with 0 terms = %v, want 0", got)
	}
	if got := Exp(x, 1); got != 1 {
		t.Errorf("Exp with 1 term = %v, want 1", got)
	}
	if got := Exp(x, 3); got != 1+x+x*x/2 {
		t.Errorf("Exp with 3 terms = %v, want %v", got, 1+x+x*x/2)
	}
}

// TestExp_InvertsLn verifies exp(ln(x)) ≈ x for x > 0.
func TestExp_InvertsLn(t *testing.T) {
	cfg := AssertionConfig{AbsTol: 1e-8, RelTol: 1e-8}

	for _, p := range []Precision{20, 50, Default} {
		for _, x := range []float64{0.25, 0.5, 1, 1.5, 2, 3} {
			AssertClose(t, "Exp(Ln(x))", Exp(Ln(x, p), p), x, cfg)
		}
	}
}

// TestPow_RepeatedMultiplication verifies integer powers.
func TestPow_RepeatedMultiplication(t *testing.T) {
	tests := []struct {
		x    float64
		n    uint
		want float64
	}{
		{2, 1, 2},
		{2, 2, 4},
		{2, 10, 1024},
		{-3, 3, -27},
		{0.5, 4, 0.0625},
		{1.5, 0, 1.5}, // n == 0 returns x, not 1
		{7, 0, 7},
	}

	for _, tt := range tests {
		if got := Pow(tt.x, tt.n); got != tt.want {
			t.Errorf("Pow(%v, %d) = %v, want %v", tt.x, tt.n, got, tt.want)
		}
	}
}

// TestPowf_KnownValues checks the reference scenarios for real exponents.
func TestPowf_KnownValues(t *testing.T) {
	if got := Powf(0.0, 0.0, Default); got != 1 {
		t.Errorf("Powf(0, 0) = %v, want exactly 1", got)
	}

	cfg := AssertionConfig{AbsTol: 1e-12, RelTol: 1e-13}
	AssertClose(t, "Powf(2.6, 4.1)", Powf(2.6, 4.1, Default), 50.279469537021214, cfg)
	AssertClose(t, "Powf(2, 0.5)", Powf(2.0, 0.5, Default), math.Sqrt2, cfg)
	AssertClose(t, "Powf(9, -0.5)", Powf(9.0, -0.5, Default), 1.0/3, cfg)
}

// TestPowf_Definition verifies Powf is exactly Exp(e·Ln(x)).
func TestPowf_Definition(t *testing.T) {
	x, e := 3.7, 1.3
	for _, p := range []Precision{5, 25, Default} {
		if got, want := Powf(x, e, p), Exp(e*Ln(x, p), p); got != want {
			t.Errorf("Powf(%v, %v, %d) = %v, want %v", x, e, p.Count(), got, want)
		}
	}
}

func BenchmarkExp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Exp(1.0, Default)
	}
}
