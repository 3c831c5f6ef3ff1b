package geometry

import (
	"fmt"

	"Plenum/internal/calc/matdb"
	"Plenum/internal/calc/vessel"
)

// RequiredThickness computes the minimum code-required (retirement) thickness
// for the component. Corrosion allowance is not included: t_required is the
// thickness at which the component retires, by definition.
func RequiredThickness(in vessel.Input, opts vessel.Options) vessel.Result {
	res := vessel.NewResult(vessel.CalcRequiredThickness)
	res.DatabaseVersion = matdb.Version

	if msg := validate(in); msg != "" {
		res.Fail(msg)
		return res
	}
	s, ok := resolveStress(in, &res)
	if !ok {
		return res
	}
	p := totalPressure(in, opts, &res)
	e := in.JointEfficiency
	res.Set("E", e)

	switch in.Component {
	case vessel.ComponentShell:
		shellThickness(&res, p, in.RadiusIn(), s, e)
	case vessel.ComponentHead:
		switch resolveHeadType(in, &res) {
		case vessel.HeadTorispherical:
			l, r := resolveTorispherical(in, &res)
			torisphericalThickness(&res, p, l, r, s, e)
		case vessel.HeadHemispherical:
			hemisphericalThickness(&res, p, in.RadiusIn(), s, e)
		case vessel.HeadEllipsoidal:
			ellipsoidalThickness(&res, p, in.DiameterIn(), s, e)
		default:
			res.Fail(fmt.Sprintf("unsupported head type %q", in.HeadType))
		}
	default:
		res.Fail(fmt.Sprintf("component must be %q or %q", vessel.ComponentShell, vessel.ComponentHead))
	}
	return res
}

// shellThickness: t = P*R / (S*E - 0.6*P), UG-27(c)(1).
func shellThickness(res *vessel.Result, p, r, s, e float64) {
	res.CodeReference = "ASME VIII-1 UG-27(c)(1)"
	res.Formula = "t = P*R / (S*E - 0.6*P)"
	res.Set("R", r)

	num := p * r
	den := s*e - 0.6*p
	res.Set("numerator", num)
	res.Set("denominator", den)
	if den <= 0 {
		res.Fail("infeasible geometry: S*E - 0.6*P <= 0; pressure exceeds what the material can carry")
		return
	}
	res.SetValue(num/den, "in")
}

// ellipsoidalThickness: t = P*D / (2*S*E - 0.2*P), UG-32(d), 2:1 heads.
func ellipsoidalThickness(res *vessel.Result, p, d, s, e float64) {
	res.CodeReference = "ASME VIII-1 UG-32(d)"
	res.Formula = "t = P*D / (2*S*E - 0.2*P)"
	res.Set("D", d)

	num := p * d
	den := 2*s*e - 0.2*p
	res.Set("numerator", num)
	res.Set("denominator", den)
	if den <= 0 {
		res.Fail("infeasible geometry: 2*S*E - 0.2*P <= 0")
		return
	}
	res.SetValue(num/den, "in")
}

// torisphericalThickness: t = P*L*M / (2*S*E - 0.2*P), UG-32(e).
func torisphericalThickness(res *vessel.Result, p, l, r, s, e float64) {
	res.CodeReference = "ASME VIII-1 UG-32(e)"
	res.Formula = "t = P*L*M / (2*S*E - 0.2*P); M = 0.25*(3 + sqrt(L/r))"
	m := mFactor(l, r)
	res.Set("L", l)
	res.Set("r", r)
	res.Set("L_over_r", l/r)
	res.Set("M", m)

	num := p * l * m
	den := 2*s*e - 0.2*p
	res.Set("numerator", num)
	res.Set("denominator", den)
	if den <= 0 {
		res.Fail("infeasible geometry: 2*S*E - 0.2*P <= 0")
		return
	}
	res.SetValue(num/den, "in")
}

// hemisphericalThickness: t = P*R / (2*S*E - 0.2*P), UG-32(f).
func hemisphericalThickness(res *vessel.Result, p, r, s, e float64) {
	res.CodeReference = "ASME VIII-1 UG-32(f)"
	res.Formula = "t = P*R / (2*S*E - 0.2*P)"
	res.Set("R", r)

	num := p * r
	den := 2*s*e - 0.2*p
	res.Set("numerator", num)
	res.Set("denominator", den)
	if den <= 0 {
		res.Fail("infeasible geometry: 2*S*E - 0.2*P <= 0")
		return
	}
	res.SetValue(num/den, "in")
}
