package displacement

import (
	"github.com/Universe-Codex/PhyArch/internal/engine"
)

// Inputs are in consistent units chosen by the caller.
type Input struct {
	Force   float64 `json:"force"`
	Length  float64 `json:"length"`
	Area    float64 `json:"area"`
	Modulus float64 `json:"elastic_modulus"`
}

type Result struct {
	Displacement float64 `json:"displacement"`
	Strain       float64 `json:"strain"`
	Stiffness    float64 `json:"axial_stiffness"`
	Valid        bool    `json:"valid"`
	Notes        string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	delta, err := engine.Displacement(in.Force, in.Length, in.Area, in.Modulus)
	if err != nil {
		return Result{}, err
	}
	// Divisors already validated above, so the companions cannot fail
	// except for stiffness with a non-positive length.
	sigma, _ := engine.Stress(in.Force, in.Area)
	eps, _ := engine.Strain(sigma, in.Modulus)
	k, kerr := engine.AxialStiffness(in.Area, in.Modulus, in.Length)
	if kerr != nil {
		k = engine.Sentinel
	}
	return Result{
		Displacement: delta,
		Strain:       eps,
		Stiffness:    k,
		Valid:        true,
		Notes:        "Linear elastic axial elongation, delta = FL/(AE).",
	}, nil
}
