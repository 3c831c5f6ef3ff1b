// Package geometry implements the ASME VIII-1 required-thickness and MAWP
// formulas for cylindrical shells and formed heads (UG-27, UG-32). Every
// function is pure: one Input in, one fully-traced Result out, hard failures
// reported in the Result rather than as Go errors.
package geometry

import (
	"fmt"
	"math"

	"Plenum/internal/calc/matdb"
	"Plenum/internal/calc/vessel"
)

// Fresh water column weight, lb/ft3. Static head in psi is SG*62.4*h/144
// with h in feet of liquid column.
const waterDensityLbFt3 = 62.4

// validate checks the inputs every geometry formula depends on. Returns a
// non-empty message on the first violation.
func validate(in vessel.Input) string {
	if in.DesignPressurePSI <= 0 {
		return "design pressure must be positive"
	}
	if in.DiameterIn() <= 0 {
		return "inside diameter or radius must be positive"
	}
	if in.JointEfficiency <= 0 || in.JointEfficiency > 1 {
		return "joint efficiency must be in (0, 1]"
	}
	for name, t := range map[string]float64{
		"nominal thickness":  in.NominalThicknessIn,
		"current thickness":  in.CurrentThicknessIn,
		"previous thickness": in.PreviousThicknessIn,
	} {
		if t < 0 {
			return name + " must be positive when supplied"
		}
	}
	return ""
}

// resolveStress records allowable-stress provenance on res and returns the
// stress to use. A direct override bypasses the versioned database and is
// flagged as a warning; otherwise the database is consulted and a lookup
// failure is a hard error.
func resolveStress(in vessel.Input, res *vessel.Result) (float64, bool) {
	if in.AllowableStressPSI > 0 {
		res.Set("S", in.AllowableStressPSI)
		res.Warn(vessel.Warning(vessel.NoteStressOverride).With("stress_psi", in.AllowableStressPSI))
		return in.AllowableStressPSI, true
	}
	if in.MaterialSpec == "" {
		res.Fail("material specification or allowable stress required")
		return 0, false
	}

	lr := matdb.Lookup(in.MaterialSpec, in.DesignTempF)
	res.DatabaseVersion = lr.DatabaseVersion
	if lr.Status == matdb.StatusError {
		res.Fail("allowable stress lookup failed: " + lr.Message)
		return 0, false
	}
	res.Set("S", *lr.StressPSI)
	res.Set("lookup_temp_f", in.DesignTempF)
	note := vessel.Info(vessel.NoteStressLookup).
		With("stress_psi", *lr.StressPSI).
		With("temp_f", in.DesignTempF).
		WithDetail(fmt.Sprintf("%s, %s, db %s", lr.MaterialKey, lr.Status, lr.DatabaseVersion))
	res.Assume(note)
	return *lr.StressPSI, true
}

// totalPressure computes the orientation-aware design pressure, adding a
// static-head term when specific gravity and liquid height are supplied.
// The horizontal convention is configuration: field practice diverges between
// charging zero and charging the full bore column.
func totalPressure(in vessel.Input, opts vessel.Options, res *vessel.Result) float64 {
	p := in.DesignPressurePSI
	res.Set("P_design", p)

	if in.SpecificGravity <= 0 || in.LiquidHeightIn <= 0 {
		res.Set("P", p)
		return p
	}

	orient := in.Orientation
	if orient == "" {
		orient = vessel.OrientationVertical
		res.Warn(vessel.Warning(vessel.NoteAssumedVertical))
	}

	var static float64
	switch orient {
	case vessel.OrientationHorizontal:
		res.Warn(vessel.Warning(vessel.NoteHorizontalHeadConvention))
		if opts.HorizontalHeadConvention() == vessel.HorizontalHeadFullBore {
			static = in.SpecificGravity * waterDensityLbFt3 * in.DiameterIn() / 144
			res.Assume(vessel.Info(vessel.NoteStaticHeadApplied).With("static_head_psi", static))
		} else {
			res.Assume(vessel.Info(vessel.NoteStaticHeadZeroHorizontal))
		}
	default:
		static = in.SpecificGravity * waterDensityLbFt3 * in.LiquidHeightIn / 144
		res.Assume(vessel.Info(vessel.NoteStaticHeadApplied).With("static_head_psi", static))
	}

	res.Set("P_static", static)
	res.Set("P", p+static)
	return p + static
}

// resolveTorispherical returns the crown and knuckle radii, applying the
// UG-32(e) defaults L=D and r=0.06D with a warning when either is missing.
func resolveTorispherical(in vessel.Input, res *vessel.Result) (l, r float64) {
	d := in.DiameterIn()
	l = in.CrownRadiusIn
	if l <= 0 {
		l = d
		res.Warn(vessel.Warning(vessel.NoteDefaultedCrownRadius).With("crown_radius_in", l))
	}
	r = in.KnuckleRadiusIn
	if r <= 0 {
		r = 0.06 * d
		res.Warn(vessel.Warning(vessel.NoteDefaultedKnuckleRadius).With("knuckle_radius_in", r))
	}
	return l, r
}

// mFactor is the torispherical shape factor M = 0.25*(3 + sqrt(L/r)).
func mFactor(l, r float64) float64 {
	return 0.25 * (3 + math.Sqrt(l/r))
}

// resolveHeadType applies the ellipsoidal default when a head has no type tag.
func resolveHeadType(in vessel.Input, res *vessel.Result) vessel.HeadType {
	if in.HeadType != "" {
		return in.HeadType
	}
	res.Warn(vessel.Warning(vessel.NoteDefaultedHeadType))
	return vessel.HeadEllipsoidal
}
