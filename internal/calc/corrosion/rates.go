// Package corrosion implements the API 510 corrosion-rate, remaining-life,
// inspection-interval and projected-MAWP policy. Rates are never negative:
// apparent wall growth (re-rating, measurement noise) clamps to zero with a
// warning so it can never extend a vessel's life.
package corrosion

import (
	"fmt"
	"time"

	"Plenum/internal/calc/matdb"
	"Plenum/internal/calc/vessel"
)

const daysPerYear = 365.25

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// currentYear prefers the current-inspection date over the wall clock so a
// replayed historical calculation reproduces its original rates.
func currentYear(in vessel.Input, now time.Time) int {
	if d, err := parseDate(in.CurrentInspection); err == nil {
		return d.Year()
	}
	return now.Year()
}

// HasLongTermInputs reports whether a long-term rate calculation should even
// be attempted. Absent inputs skip the calculation; partial inputs fail it.
func HasLongTermInputs(in vessel.Input) bool {
	return in.NominalThicknessIn > 0 || in.YearBuilt > 0
}

// HasShortTermInputs is the attempt gate for the short-term rate.
func HasShortTermInputs(in vessel.Input) bool {
	return in.PreviousThicknessIn > 0 || in.PreviousInspection != ""
}

// LongTermRate computes (t_nominal - t_current) / (currentYear - yearBuilt).
func LongTermRate(in vessel.Input, now time.Time) vessel.Result {
	res := vessel.NewResult(vessel.CalcCorrosionRateLT)
	res.DatabaseVersion = matdb.Version
	res.CodeReference = "API 510 §7.1.1"
	res.Formula = "CR_LT = (t_nominal - t_current) / (current_year - year_built)"

	switch {
	case in.NominalThicknessIn <= 0:
		res.Fail("nominal thickness required for long-term rate")
		return res
	case in.CurrentThicknessIn <= 0:
		res.Fail("current thickness required for long-term rate")
		return res
	case in.YearBuilt <= 0:
		res.Fail("year built required for long-term rate")
		return res
	}

	year := currentYear(in, now)
	span := float64(year - in.YearBuilt)
	res.Set("t_nominal", in.NominalThicknessIn)
	res.Set("t_current", in.CurrentThicknessIn)
	res.Set("year_built", float64(in.YearBuilt))
	res.Set("current_year", float64(year))
	res.Set("years", span)
	if span <= 0 {
		res.Fail(fmt.Sprintf("year built %d is not before current year %d", in.YearBuilt, year))
		return res
	}

	loss := in.NominalThicknessIn - in.CurrentThicknessIn
	res.Set("loss", loss)
	rate := loss / span
	if rate < 0 {
		res.Warn(vessel.Warning(vessel.NoteNegativeRateClamped).With("raw_rate_in_per_yr", rate))
		rate = 0
	}
	res.SetValue(rate, "in/yr")
	return res
}

// ShortTermRate computes (t_previous - t_current) over the calendar span
// between the two inspection dates, in days / 365.25.
func ShortTermRate(in vessel.Input) vessel.Result {
	res := vessel.NewResult(vessel.CalcCorrosionRateST)
	res.DatabaseVersion = matdb.Version
	res.CodeReference = "API 510 §7.1.1"
	res.Formula = "CR_ST = (t_previous - t_current) / years_between_inspections"

	switch {
	case in.PreviousThicknessIn <= 0:
		res.Fail("previous thickness required for short-term rate")
		return res
	case in.CurrentThicknessIn <= 0:
		res.Fail("current thickness required for short-term rate")
		return res
	}
	prev, err := parseDate(in.PreviousInspection)
	if err != nil {
		res.Fail("previous inspection date required for short-term rate (YYYY-MM-DD)")
		return res
	}
	curr, err := parseDate(in.CurrentInspection)
	if err != nil {
		res.Fail("current inspection date required for short-term rate (YYYY-MM-DD)")
		return res
	}

	days := curr.Sub(prev).Hours() / 24
	years := days / daysPerYear
	res.Set("t_previous", in.PreviousThicknessIn)
	res.Set("t_current", in.CurrentThicknessIn)
	res.Set("days", days)
	res.Set("years", years)
	if years <= 0 {
		res.Fail("current inspection date must be after previous inspection date")
		return res
	}

	loss := in.PreviousThicknessIn - in.CurrentThicknessIn
	res.Set("loss", loss)
	rate := loss / years
	if rate < 0 {
		res.Warn(vessel.Warning(vessel.NoteNegativeRateClamped).With("raw_rate_in_per_yr", rate))
		rate = 0
	}
	res.SetValue(rate, "in/yr")
	return res
}

// Governing is the rate that controls remaining life, with its provenance.
type Governing struct {
	RateInPerYr float64 `json:"rate_in_per_yr"`
	Source      string  `json:"source"` // "LT" or "ST"
}

// GoverningRate picks the larger of the available rates; with only one
// computable rate, that rate governs. ok is false when neither is available.
func GoverningRate(lt, st *vessel.Result) (Governing, bool) {
	ltOK := lt != nil && lt.Success && lt.Value != nil
	stOK := st != nil && st.Success && st.Value != nil
	switch {
	case ltOK && stOK:
		if *st.Value > *lt.Value {
			return Governing{RateInPerYr: *st.Value, Source: "ST"}, true
		}
		return Governing{RateInPerYr: *lt.Value, Source: "LT"}, true
	case ltOK:
		return Governing{RateInPerYr: *lt.Value, Source: "LT"}, true
	case stOK:
		return Governing{RateInPerYr: *st.Value, Source: "ST"}, true
	}
	return Governing{}, false
}
