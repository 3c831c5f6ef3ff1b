package geometry

import (
	"fmt"

	"Plenum/internal/calc/matdb"
	"Plenum/internal/calc/vessel"
)

// MAWP computes the maximum allowable working pressure at the component's
// current measured thickness.
func MAWP(in vessel.Input, opts vessel.Options) vessel.Result {
	if in.CurrentThicknessIn <= 0 {
		res := vessel.NewResult(vessel.CalcMAWP)
		res.DatabaseVersion = matdb.Version
		res.Fail("current thickness required for MAWP")
		return res
	}
	return MAWPAtThickness(in, opts, in.CurrentThicknessIn)
}

// MAWPAtThickness computes MAWP at an arbitrary thickness t, which is how the
// corrosion policy prices a projected future wall. A computed MAWP below the
// design pressure is a warning, not an error: the vessel is in a valid but
// concerning state and may need de-rating.
func MAWPAtThickness(in vessel.Input, opts vessel.Options, t float64) vessel.Result {
	res := vessel.NewResult(vessel.CalcMAWP)
	res.DatabaseVersion = matdb.Version

	if msg := validate(in); msg != "" {
		res.Fail(msg)
		return res
	}
	if t <= 0 {
		res.Fail("thickness must be positive")
		return res
	}
	s, ok := resolveStress(in, &res)
	if !ok {
		return res
	}
	e := in.JointEfficiency
	res.Set("E", e)
	res.Set("t", t)

	switch in.Component {
	case vessel.ComponentShell:
		shellMAWP(&res, s, e, t, in.RadiusIn())
	case vessel.ComponentHead:
		switch resolveHeadType(in, &res) {
		case vessel.HeadTorispherical:
			l, r := resolveTorispherical(in, &res)
			torisphericalMAWP(&res, s, e, t, l, r)
		case vessel.HeadHemispherical:
			hemisphericalMAWP(&res, s, e, t, in.RadiusIn())
		case vessel.HeadEllipsoidal:
			ellipsoidalMAWP(&res, s, e, t, in.DiameterIn())
		default:
			res.Fail(fmt.Sprintf("unsupported head type %q", in.HeadType))
		}
	default:
		res.Fail(fmt.Sprintf("component must be %q or %q", vessel.ComponentShell, vessel.ComponentHead))
	}

	if res.Success && res.Value != nil && *res.Value < in.DesignPressurePSI {
		res.Warn(vessel.Warning(vessel.NoteMAWPBelowDesign).
			With("mawp_psi", *res.Value).
			With("design_pressure_psi", in.DesignPressurePSI))
	}
	return res
}

// shellMAWP: MAWP = S*E*t / (R + 0.6*t), UG-27(c)(1) solved for P.
func shellMAWP(res *vessel.Result, s, e, t, r float64) {
	res.CodeReference = "ASME VIII-1 UG-27(c)(1)"
	res.Formula = "MAWP = S*E*t / (R + 0.6*t)"
	res.Set("R", r)
	num := s * e * t
	den := r + 0.6*t
	res.Set("numerator", num)
	res.Set("denominator", den)
	res.SetValue(num/den, "psi")
}

// ellipsoidalMAWP: MAWP = 2*S*E*t / (D + 0.2*t), UG-32(d) solved for P.
func ellipsoidalMAWP(res *vessel.Result, s, e, t, d float64) {
	res.CodeReference = "ASME VIII-1 UG-32(d)"
	res.Formula = "MAWP = 2*S*E*t / (D + 0.2*t)"
	res.Set("D", d)
	num := 2 * s * e * t
	den := d + 0.2*t
	res.Set("numerator", num)
	res.Set("denominator", den)
	res.SetValue(num/den, "psi")
}

// torisphericalMAWP: MAWP = 2*S*E*t / (L*M + 0.2*t), UG-32(e) solved for P.
func torisphericalMAWP(res *vessel.Result, s, e, t, l, r float64) {
	res.CodeReference = "ASME VIII-1 UG-32(e)"
	res.Formula = "MAWP = 2*S*E*t / (L*M + 0.2*t); M = 0.25*(3 + sqrt(L/r))"
	m := mFactor(l, r)
	res.Set("L", l)
	res.Set("r", r)
	res.Set("M", m)
	num := 2 * s * e * t
	den := l*m + 0.2*t
	res.Set("numerator", num)
	res.Set("denominator", den)
	res.SetValue(num/den, "psi")
}

// hemisphericalMAWP: MAWP = 2*S*E*t / (R + 0.2*t), UG-32(f) solved for P.
func hemisphericalMAWP(res *vessel.Result, s, e, t, r float64) {
	res.CodeReference = "ASME VIII-1 UG-32(f)"
	res.Formula = "MAWP = 2*S*E*t / (R + 0.2*t)"
	res.Set("R", r)
	num := 2 * s * e * t
	den := r + 0.2*t
	res.Set("numerator", num)
	res.Set("denominator", den)
	res.SetValue(num/den, "psi")
}
