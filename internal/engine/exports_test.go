package engine

import (
	"math"
	"sync"
	"testing"
)

func TestExportTableComplete(t *testing.T) {
	want := []string{
		ExportAxialStiffness,
		ExportDisplacement,
		ExportStrain,
		ExportStress,
	}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d exports, got %d: %v", len(want), len(got), got)
	}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], name)
		}
	}
}

func TestResolve(t *testing.T) {
	e, ok := Resolve(ExportDisplacement)
	if !ok {
		t.Fatal("expected displacement export to resolve")
	}
	if e.Arity != 4 {
		t.Errorf("expected arity 4, got %d", e.Arity)
	}

	if _, ok := Resolve("engine_calculate_torque"); ok {
		t.Error("expected unknown name not to resolve")
	}
}

func TestCallSentinel(t *testing.T) {
	cases := []struct {
		name   string
		export string
		args   []float64
		want   float64
	}{
		{"stress ok", ExportStress, []float64{1000.0, 10.0}, 100.0},
		{"stress zero area", ExportStress, []float64{500.0, 0.0}, 0.0},
		{"stress negative area", ExportStress, []float64{500.0, -5.0}, 0.0},
		{"displacement ok", ExportDisplacement, []float64{1000.0, 2.0, 0.01, 200000.0}, 1.0},
		{"displacement zero area", ExportDisplacement, []float64{1000.0, 2.0, 0.0, 200000.0}, 0.0},
		{"displacement zero modulus", ExportDisplacement, []float64{1000.0, 2.0, 0.01, 0.0}, 0.0},
		{"unknown export", "engine_calculate_torque", []float64{1.0}, 0.0},
		{"wrong arity", ExportStress, []float64{1000.0}, 0.0},
		{"nan input", ExportStress, []float64{math.NaN(), 10.0}, 0.0},
		{"overflow to inf", ExportStress, []float64{math.MaxFloat64, 1e-300}, 0.0},
	}
	for _, c := range cases {
		got := Call(c.export, c.args...)
		if relDiff(got, c.want) > 1e-6 {
			t.Errorf("%s: Call = %g, want %g", c.name, got, c.want)
		}
	}
}

func TestCallNeverNonFinite(t *testing.T) {
	hostile := [][]float64{
		{math.Inf(1), 1.0},
		{1.0, math.Inf(1)},
		{math.NaN(), math.NaN()},
	}
	for _, args := range hostile {
		got := Call(ExportStress, args...)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("Call(stress, %v) leaked non-finite %g across the boundary", args, got)
		}
	}
}

// Interleaved concurrent invocation with varied inputs must not disturb
// determinism of any other call.
func TestConcurrentCalls(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(seed float64) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				force := seed * float64(i+1)
				if got := Call(ExportStress, force, 4.0); got != force/4.0 {
					t.Errorf("Call(stress, %g, 4) = %g, want %g", force, got, force/4.0)
					return
				}
				if got := Call(ExportDisplacement, force, 2.0, 0.0, 1.0); got != 0.0 {
					t.Errorf("expected sentinel under concurrency, got %g", got)
					return
				}
			}
		}(float64(g + 1))
	}
	wg.Wait()

	// Deterministic recheck after the interleaved burst.
	if got := Call(ExportStress, 1000.0, 10.0); got != 100.0 {
		t.Errorf("post-burst Call(stress) = %g, want 100", got)
	}
}
