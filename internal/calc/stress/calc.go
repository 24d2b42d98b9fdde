package stress

import (
	"github.com/Universe-Codex/PhyArch/internal/engine"
)

// Inputs are in consistent units chosen by the caller (e.g. N and m2 give Pa).
type Input struct {
	Force float64 `json:"force"`
	Area  float64 `json:"area"`
}

type Result struct {
	Stress float64 `json:"stress"`
	Valid  bool    `json:"valid"`
	Notes  string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	sigma, err := engine.Stress(in.Force, in.Area)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Stress: sigma,
		Valid:  true,
		Notes:  "Axial stress, sigma = F/A.",
	}, nil
}
