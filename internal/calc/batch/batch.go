package batch

import (
	"fmt"

	displacement "github.com/Universe-Codex/PhyArch/internal/calc/displacement"
	stress "github.com/Universe-Codex/PhyArch/internal/calc/stress"
)

type StressBatchInput struct {
	Items []stress.Input `json:"items"`
}

type StressBatchResult struct {
	Results []stress.Result `json:"results"`
}

type DisplacementBatchInput struct {
	Items []displacement.Input `json:"items"`
}

type DisplacementBatchResult struct {
	Results []displacement.Result `json:"results"`
}

// A domain-invalid item does not fail the batch; it yields the zero-valued
// sentinel result in its slot, same as a single call would.
func CalculateStress(in StressBatchInput) (StressBatchResult, error) {
	if len(in.Items) == 0 {
		return StressBatchResult{}, fmt.Errorf("no items")
	}
	out := StressBatchResult{Results: make([]stress.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := stress.Calculate(item)
		if err != nil {
			res = stress.Result{}
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}

func CalculateDisplacement(in DisplacementBatchInput) (DisplacementBatchResult, error) {
	if len(in.Items) == 0 {
		return DisplacementBatchResult{}, fmt.Errorf("no items")
	}
	out := DisplacementBatchResult{Results: make([]displacement.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := displacement.Calculate(item)
		if err != nil {
			res = displacement.Result{}
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
