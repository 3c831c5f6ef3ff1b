// Package fullcalc orchestrates the per-component calculation bundle:
// required thickness, MAWP, and the corrosion/life chain, combined into one
// traceable FullResult with an overall fitness determination.
package fullcalc

import (
	"fmt"
	"time"

	"Plenum/internal/calc/corrosion"
	"Plenum/internal/calc/geometry"
	"Plenum/internal/calc/vessel"
)

// Calculate runs the full bundle for one component.
func Calculate(in vessel.Input, opts vessel.Options) vessel.FullResult {
	return CalculateAt(in, opts, time.Now().UTC())
}

// CalculateAt is Calculate with an injected clock so historical inspections
// replay to identical results.
func CalculateAt(in vessel.Input, opts vessel.Options, now time.Time) vessel.FullResult {
	full := vessel.FullResult{ComponentID: in.ComponentID}

	full.TRequired = geometry.RequiredThickness(in, opts)
	tRequired := 0.0
	if full.TRequired.Success && full.TRequired.Value != nil {
		tRequired = *full.TRequired.Value
	}

	// Corrosion allowance is derived, not required: the margin above
	// retirement thickness is what is left to corrode.
	if in.CorrosionAllowanceIn <= 0 && tRequired > 0 && in.CurrentThicknessIn > 0 {
		ca := in.CurrentThicknessIn - tRequired
		if ca < 0 {
			ca = 0
		}
		in.CorrosionAllowanceIn = ca
		full.Warnings = append(full.Warnings,
			vessel.Warning(vessel.NoteDerivedCorrosionAllow).With("corrosion_allowance_in", ca))
	}

	full.MAWP = geometry.MAWP(in, opts)

	a := corrosion.Assess(in, opts, tRequired, now)
	full.CorrosionLT = a.LT
	full.CorrosionST = a.ST
	full.RemainingLife = a.Life
	full.NextInspection = a.Interval
	full.ProjectedMAWP = a.Projected

	// The two load-bearing results decide overall success; the corrosion
	// chain is best-effort.
	full.Success = full.TRequired.Success && full.MAWP.Success

	full.Summary = summarize(in, &full, a)
	full.Warnings = append(full.Warnings, collectWarnings(&full)...)
	return full
}

func summarize(in vessel.Input, full *vessel.FullResult, a corrosion.Assessment) vessel.Summary {
	s := vessel.Summary{}
	s.TRequiredIn = full.TRequired.Value
	s.MAWPPSI = full.MAWP.Value
	if a.Governing != nil {
		rate := a.Governing.RateInPerYr
		s.GoverningRateInPerYr = &rate
		s.GoverningRateSource = a.Governing.Source
	}
	s.RemainingLife = a.RemainingLife
	if a.Interval != nil && a.Interval.Value != nil {
		s.NextInspectionYears = a.Interval.Value
	}
	s.Status, s.Reason = classify(in, full, a)
	return s
}

// classify applies the acceptance ladder: thickness below required is
// unacceptable, remaining life under 2 years is unacceptable, under 4 years
// is marginal, everything else is acceptable. An incomplete load-bearing
// calculation is reported conservatively as unacceptable.
func classify(in vessel.Input, full *vessel.FullResult, a corrosion.Assessment) (vessel.OverallStatus, string) {
	if !full.TRequired.Success {
		return vessel.StatusUnacceptable, "required thickness could not be computed: " + full.TRequired.Error
	}
	if !full.MAWP.Success {
		return vessel.StatusUnacceptable, "MAWP could not be computed: " + full.MAWP.Error
	}

	tReq := *full.TRequired.Value
	if in.CurrentThicknessIn > 0 && in.CurrentThicknessIn < tReq {
		return vessel.StatusUnacceptable,
			fmt.Sprintf("current thickness %.4f in below required %.4f in", in.CurrentThicknessIn, tReq)
	}

	if rl := a.RemainingLife; rl != nil && !rl.Infinite {
		if rl.Years < 2 {
			return vessel.StatusUnacceptable, fmt.Sprintf("remaining life %.2f yr below 2 yr minimum", rl.Years)
		}
		if rl.Years < 4 {
			return vessel.StatusMarginal, fmt.Sprintf("remaining life %.2f yr below 4 yr caution threshold", rl.Years)
		}
	}
	return vessel.StatusAcceptable, "thickness and remaining life within limits"
}

// collectWarnings unions every sub-calculation's warnings into the bundle.
func collectWarnings(full *vessel.FullResult) []vessel.Note {
	var out []vessel.Note
	add := func(r *vessel.Result) {
		if r != nil {
			out = append(out, r.Warnings...)
		}
	}
	add(&full.TRequired)
	add(&full.MAWP)
	add(full.CorrosionLT)
	add(full.CorrosionST)
	add(full.RemainingLife)
	add(full.NextInspection)
	add(full.ProjectedMAWP)
	return out
}
