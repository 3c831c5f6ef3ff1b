package corrosion

import (
	"fmt"

	"Plenum/internal/calc/matdb"
	"Plenum/internal/calc/vessel"
)

// Remaining-life screening thresholds, years.
const (
	lifeCriticalYears = 2
	lifeCautionYears  = 4
	maxIntervalYears  = 10
)

// Life computes remaining life (t_current - t_required) / rate against the
// governing corrosion rate. The typed RemainingLife is returned alongside the
// audit Result so the interval policy can chain off it even when the Result is
// an error (thickness at or below required is a hard, immediate-action error,
// and its remaining life is zero, not absent).
func Life(tCurrent, tRequired float64, gov Governing) (vessel.Result, vessel.RemainingLife) {
	res := vessel.NewResult(vessel.CalcRemainingLife)
	res.DatabaseVersion = matdb.Version
	res.CodeReference = "API 510 §7.2"
	res.Formula = "RL = (t_current - t_required) / governing_rate"
	res.Set("t_current", tCurrent)
	res.Set("t_required", tRequired)
	res.Set("governing_rate", gov.RateInPerYr)

	if tCurrent <= 0 {
		res.Fail("current thickness required for remaining life")
		return res, vessel.LifeYears(0)
	}

	if tCurrent <= tRequired {
		res.Warn(vessel.Warning(vessel.NoteImmediateInspection).
			With("t_current", tCurrent).
			With("t_required", tRequired))
		res.Fail(fmt.Sprintf("current thickness %.4f in at or below required %.4f in; immediate action required", tCurrent, tRequired))
		return res, vessel.LifeYears(0)
	}

	if gov.RateInPerYr <= 0 {
		res.Assume(vessel.Info(vessel.NoteNoCorrosionMeasured))
		return res, vessel.InfiniteLife()
	}

	rl := (tCurrent - tRequired) / gov.RateInPerYr
	res.SetValue(rl, "yr")
	if rl < lifeCriticalYears {
		res.Warn(vessel.Warning(vessel.NoteRemainingLifeCritical).With("remaining_life_yr", rl))
	} else if rl < lifeCautionYears {
		res.Warn(vessel.Warning(vessel.NoteRemainingLifeCaution).With("remaining_life_yr", rl))
	}
	return res, vessel.LifeYears(rl)
}

// NextInterval derives the next inspection interval from remaining life:
//
//	RL <= 0       -> 0, immediate
//	0 < RL < 2    -> RL
//	2 <= RL <= 4  -> 2
//	RL > 4        -> min(RL/2, 10)
//
// Inclusive boundaries belong to the lower-interval branch. Infinite
// remaining life caps at the 10 year maximum.
func NextInterval(life vessel.RemainingLife) vessel.Result {
	res := vessel.NewResult(vessel.CalcNextInspection)
	res.DatabaseVersion = matdb.Version
	res.CodeReference = "API 510 §6.4"
	res.Formula = "interval = 0 | RL | 2 | min(RL/2, 10) by remaining-life band"

	if life.Infinite {
		res.Assume(vessel.Info(vessel.NoteNoCorrosionMeasured))
		res.SetValue(maxIntervalYears, "yr")
		return res
	}

	rl := life.Years
	res.Set("remaining_life_yr", rl)
	switch {
	case rl <= 0:
		res.Warn(vessel.Warning(vessel.NoteImmediateInspection))
		res.SetValue(0, "yr")
	case rl < lifeCriticalYears:
		res.Warn(vessel.Warning(vessel.NoteRemainingLifeCritical).With("remaining_life_yr", rl))
		res.SetValue(rl, "yr")
	case rl <= lifeCautionYears:
		res.SetValue(lifeCriticalYears, "yr")
	default:
		half := rl / 2
		if half > maxIntervalYears {
			half = maxIntervalYears
		}
		res.SetValue(half, "yr")
	}
	return res
}
