package engine

import (
	"errors"
	"math"
	"testing"
)

func TestStress(t *testing.T) {
	got, err := Stress(1000.0, 10.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 100.0 {
		t.Errorf("expected 100.0, got %g", got)
	}
}

func TestStressRelative(t *testing.T) {
	cases := []struct {
		force, area float64
	}{
		{1.0, 3.0},
		{-250.0, 0.7},
		{1e9, 1e-6},
		{0.0, 42.0},
	}
	for _, c := range cases {
		got, err := Stress(c.force, c.area)
		if err != nil {
			t.Fatalf("Stress(%g, %g): %v", c.force, c.area, err)
		}
		want := c.force / c.area
		if relDiff(got, want) > 1e-6 {
			t.Errorf("Stress(%g, %g) = %g, want %g", c.force, c.area, got, want)
		}
	}
}

func TestStressNonPositiveArea(t *testing.T) {
	for _, area := range []float64{0.0, -5.0, -1e-9} {
		got, err := Stress(500.0, area)
		if !errors.Is(err, ErrNonPositiveDivisor) {
			t.Errorf("Stress(500, %g): expected ErrNonPositiveDivisor, got %v", area, err)
		}
		if got != 0.0 {
			t.Errorf("Stress(500, %g) = %g, want 0", area, got)
		}
	}
}

func TestDisplacement(t *testing.T) {
	got, err := Displacement(1000.0, 2.0, 0.01, 200000.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if relDiff(got, 1.0) > 1e-6 {
		t.Errorf("expected ~1.0, got %g", got)
	}
}

func TestDisplacementNonPositiveDivisor(t *testing.T) {
	cases := []struct {
		name                          string
		force, length, area, modulus float64
	}{
		{"zero area", 1000.0, 2.0, 0.0, 200000.0},
		{"negative area", 1000.0, 2.0, -0.01, 200000.0},
		{"zero modulus", 1000.0, 2.0, 0.01, 0.0},
		{"negative modulus", 1000.0, 2.0, 0.01, -1.0},
	}
	for _, c := range cases {
		got, err := Displacement(c.force, c.length, c.area, c.modulus)
		if !errors.Is(err, ErrNonPositiveDivisor) {
			t.Errorf("%s: expected ErrNonPositiveDivisor, got %v", c.name, err)
		}
		if got != 0.0 {
			t.Errorf("%s: got %g, want 0", c.name, got)
		}
	}
}

func TestStrain(t *testing.T) {
	got, err := Strain(200.0, 200000.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if relDiff(got, 0.001) > 1e-6 {
		t.Errorf("expected 0.001, got %g", got)
	}

	if _, err := Strain(200.0, 0.0); !errors.Is(err, ErrNonPositiveDivisor) {
		t.Errorf("expected ErrNonPositiveDivisor, got %v", err)
	}
}

func TestAxialStiffness(t *testing.T) {
	got, err := AxialStiffness(0.01, 200000.0, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if relDiff(got, 1000.0) > 1e-6 {
		t.Errorf("expected 1000, got %g", got)
	}

	for _, length := range []float64{0.0, -2.0} {
		if _, err := AxialStiffness(0.01, 200000.0, length); !errors.Is(err, ErrNonPositiveDivisor) {
			t.Errorf("length %g: expected ErrNonPositiveDivisor, got %v", length, err)
		}
	}
}

// Repeated calls with identical input must produce bit-identical output.
func TestPurity(t *testing.T) {
	first, err := Displacement(1234.5, 6.7, 0.0089, 210000.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 100; i++ {
		again, err := Displacement(1234.5, 6.7, 0.0089, 210000.0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Float64bits(again) != math.Float64bits(first) {
			t.Fatalf("call %d: got %x, want %x", i, math.Float64bits(again), math.Float64bits(first))
		}
	}
}

func relDiff(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}
