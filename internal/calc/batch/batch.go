// Package batch runs the full calculation over a set of components and picks
// the governing component: the lowest MAWP governs the vessel.
package batch

import (
	"fmt"

	"Plenum/internal/calc/fullcalc"
	"Plenum/internal/calc/vessel"
)

type Input struct {
	Items []vessel.Input `json:"items"`
}

type Result struct {
	Results            []vessel.FullResult  `json:"results"`
	GoverningMAWPPSI   *float64             `json:"governing_mawp_psi,omitempty"`
	GoverningComponent string               `json:"governing_component,omitempty"`
	Status             vessel.OverallStatus `json:"status"`
}

func statusRank(s vessel.OverallStatus) int {
	switch s {
	case vessel.StatusUnacceptable:
		return 2
	case vessel.StatusMarginal:
		return 1
	default:
		return 0
	}
}

func Calculate(in Input, opts vessel.Options) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{
		Results: make([]vessel.FullResult, 0, len(in.Items)),
		Status:  vessel.StatusAcceptable,
	}
	for i, item := range in.Items {
		res := fullcalc.Calculate(item, opts)
		out.Results = append(out.Results, res)

		if statusRank(res.Summary.Status) > statusRank(out.Status) {
			out.Status = res.Summary.Status
		}
		if res.MAWP.Success && res.MAWP.Value != nil {
			if out.GoverningMAWPPSI == nil || *res.MAWP.Value < *out.GoverningMAWPPSI {
				v := *res.MAWP.Value
				out.GoverningMAWPPSI = &v
				out.GoverningComponent = item.ComponentID
				if out.GoverningComponent == "" {
					out.GoverningComponent = fmt.Sprintf("item %d", i)
				}
			}
		}
	}
	return out, nil
}
