package corrosion

import (
	"Plenum/internal/calc/geometry"
	"Plenum/internal/calc/matdb"
	"Plenum/internal/calc/vessel"
)

// projectionSafetyFactor is the API 510 practice of projecting wall loss at
// twice the governing rate when pricing the next-interval MAWP.
const projectionSafetyFactor = 2

// staticHeadPerFootPSI converts feet of water column to psi (62.4/144).
const staticHeadPerFootPSI = 0.433

// ProjectedMAWP projects the wall forward to the next inspection at twice the
// governing rate, reprices MAWP at that thickness with the component's own
// geometry formula, then deducts the worst-case full liquid column to obtain
// the usable MAWP.
func ProjectedMAWP(in vessel.Input, opts vessel.Options, intervalYears float64, gov Governing) vessel.Result {
	res := vessel.NewResult(vessel.CalcProjectedMAWP)
	res.DatabaseVersion = matdb.Version
	res.CodeReference = "API 510 §7.2"
	res.Formula = "t_proj = t_current - 2*interval*rate; MAWP(t_proj) - static_head"

	if in.CurrentThicknessIn <= 0 {
		res.Fail("current thickness required for projected MAWP")
		return res
	}

	tProj := in.CurrentThicknessIn - projectionSafetyFactor*intervalYears*gov.RateInPerYr
	res.Set("t_current", in.CurrentThicknessIn)
	res.Set("interval_yr", intervalYears)
	res.Set("governing_rate", gov.RateInPerYr)
	res.Set("safety_factor", projectionSafetyFactor)
	res.Set("t_projected", tProj)

	if tProj <= 0 {
		res.Warn(vessel.Warning(vessel.NoteProjectedDepleted).With("t_projected", tProj))
		res.SetValue(0, "psi")
		return res
	}

	mawp := geometry.MAWPAtThickness(in, opts, tProj)
	if !mawp.Success || mawp.Value == nil {
		res.Fail("projected MAWP: " + mawp.Error)
		return res
	}
	for k, v := range mawp.Intermediates {
		res.Set(k, v)
	}
	res.Assumptions = append(res.Assumptions, mawp.Assumptions...)
	for _, w := range mawp.Warnings {
		// MAWP-below-design is re-judged on the usable value after deduction.
		if w.Code != vessel.NoteMAWPBelowDesign {
			res.Warn(w)
		}
	}

	usable := *mawp.Value - staticHeadDeduction(in, &res)
	res.SetValue(usable, "psi")
	if usable < in.DesignPressurePSI {
		res.Warn(vessel.Warning(vessel.NoteMAWPBelowDesign).
			With("mawp_psi", usable).
			With("design_pressure_psi", in.DesignPressurePSI))
	}
	return res
}

// staticHeadDeduction charges the worst-case full liquid column against the
// projected MAWP: the supplied liquid height for a vertical vessel, the full
// bore for a horizontal one.
func staticHeadDeduction(in vessel.Input, res *vessel.Result) float64 {
	if in.SpecificGravity <= 0 {
		return 0
	}
	var hFt float64
	if in.Orientation == vessel.OrientationHorizontal {
		hFt = in.DiameterIn() / 12
	} else {
		hFt = in.LiquidHeightIn / 12
	}
	if hFt <= 0 {
		return 0
	}
	ded := hFt * staticHeadPerFootPSI * in.SpecificGravity
	res.Set("static_head_deduction_psi", ded)
	res.Assume(vessel.Info(vessel.NoteStaticHeadDeducted).With("deduction_psi", ded))
	return ded
}
