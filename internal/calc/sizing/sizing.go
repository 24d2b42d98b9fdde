package sizing

import (
	"fmt"

	"github.com/Universe-Codex/PhyArch/internal/engine"
)

// Input sizes the cross-section of an axially loaded member. Either limit may
// be omitted (zero), but not both.
type Input struct {
	Force             float64 `json:"force"`
	Length            float64 `json:"length"`
	Modulus           float64 `json:"elastic_modulus"`
	AllowableStress   float64 `json:"allowable_stress"`
	DisplacementLimit float64 `json:"displacement_limit"`
}

type Result struct {
	RequiredArea       float64 `json:"required_area"`
	GovernedBy         string  `json:"governed_by"`
	StressAtArea       float64 `json:"stress_at_area"`
	DisplacementAtArea float64 `json:"displacement_at_area"`
	Notes              string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.Force <= 0 {
		return Result{}, fmt.Errorf("invalid force")
	}
	if in.AllowableStress <= 0 && in.DisplacementLimit <= 0 {
		return Result{}, fmt.Errorf("no governing limit")
	}

	var area float64
	governed := ""
	if in.AllowableStress > 0 {
		// sigma = F/A  =>  A = F/sigma_allow
		area = in.Force / in.AllowableStress
		governed = "stress"
	}
	if in.DisplacementLimit > 0 {
		if in.Length <= 0 || in.Modulus <= 0 {
			return Result{}, fmt.Errorf("displacement limit needs length and modulus")
		}
		// delta = FL/(AE)  =>  A = FL/(E*delta_limit)
		aDelta := in.Force * in.Length / (in.Modulus * in.DisplacementLimit)
		if aDelta > area {
			area = aDelta
			governed = "displacement"
		}
	}

	res := Result{
		RequiredArea: area,
		GovernedBy:   governed,
		Notes:        "Axial member sized for the governing of stress and displacement limits.",
	}
	res.StressAtArea = engine.Call(engine.ExportStress, in.Force, area)
	if in.Length > 0 && in.Modulus > 0 {
		res.DisplacementAtArea = engine.Call(engine.ExportDisplacement, in.Force, in.Length, area, in.Modulus)
	}
	return res, nil
}
