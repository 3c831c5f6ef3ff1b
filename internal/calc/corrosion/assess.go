package corrosion

import (
	"time"

	"Plenum/internal/calc/vessel"
)

// Assessment is the corrosion/life chain for one component. Members are nil
// when their inputs were entirely absent; a member that was attempted with
// partial inputs is present with a failed Result.
type Assessment struct {
	LT            *vessel.Result        `json:"corrosion_rate_lt,omitempty"`
	ST            *vessel.Result        `json:"corrosion_rate_st,omitempty"`
	Governing     *Governing            `json:"governing,omitempty"`
	Life          *vessel.Result        `json:"remaining_life,omitempty"`
	RemainingLife *vessel.RemainingLife `json:"remaining_life_value,omitempty"`
	Interval      *vessel.Result        `json:"next_inspection_interval,omitempty"`
	Projected     *vessel.Result        `json:"projected_mawp,omitempty"`
}

// Assess runs the policy chain: rates, governing rate, remaining life,
// next-inspection interval, projected MAWP. Each stage is skipped when the
// stage before it produced nothing to chain from.
func Assess(in vessel.Input, opts vessel.Options, tRequired float64, now time.Time) Assessment {
	var a Assessment

	if HasLongTermInputs(in) {
		lt := LongTermRate(in, now)
		a.LT = &lt
	}
	if HasShortTermInputs(in) {
		st := ShortTermRate(in)
		a.ST = &st
	}

	gov, ok := GoverningRate(a.LT, a.ST)
	if !ok {
		return a
	}
	a.Governing = &gov

	if tRequired <= 0 || in.CurrentThicknessIn <= 0 {
		return a
	}
	life, rl := Life(in.CurrentThicknessIn, tRequired, gov)
	a.Life = &life
	a.RemainingLife = &rl

	interval := NextInterval(rl)
	a.Interval = &interval
	if !interval.Success || interval.Value == nil {
		return a
	}

	proj := ProjectedMAWP(in, opts, *interval.Value, gov)
	a.Projected = &proj
	return a
}
