package corrosion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Plenum/internal/calc/vessel"
)

var testNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestLongTermRate(t *testing.T) {
	in := vessel.Input{
		NominalThicknessIn: 0.5,
		CurrentThicknessIn: 0.45,
		YearBuilt:          2010,
		CurrentInspection:  "2025-03-15",
	}
	res := LongTermRate(in, testNow)
	require.True(t, res.Success, "error: %s", res.Error)
	assert.InDelta(t, 0.00333, *res.Value, 0.0001)
	assert.Equal(t, "in/yr", res.Unit)
	assert.InDelta(t, 15, res.Intermediates["years"], 1e-9)
}

func TestLongTermRateUsesClockWithoutInspectionDate(t *testing.T) {
	in := vessel.Input{
		NominalThicknessIn: 0.5,
		CurrentThicknessIn: 0.45,
		YearBuilt:          2010,
	}
	res := LongTermRate(in, testNow)
	require.True(t, res.Success)
	assert.InDelta(t, 2025, res.Intermediates["current_year"], 1e-9)
}

func TestLongTermRateClampsGrowth(t *testing.T) {
	in := vessel.Input{
		NominalThicknessIn: 0.45,
		CurrentThicknessIn: 0.5, // thicker than nominal
		YearBuilt:          2010,
		CurrentInspection:  "2025-03-15",
	}
	res := LongTermRate(in, testNow)
	require.True(t, res.Success)
	assert.Zero(t, *res.Value)
	assert.True(t, vessel.HasNote(res.Warnings, vessel.NoteNegativeRateClamped))
}

func TestLongTermRateMissingInputs(t *testing.T) {
	res := LongTermRate(vessel.Input{NominalThicknessIn: 0.5, CurrentThicknessIn: 0.45}, testNow)
	assert.False(t, res.Success)

	res = LongTermRate(vessel.Input{NominalThicknessIn: 0.5, CurrentThicknessIn: 0.45, YearBuilt: 2040}, testNow)
	assert.False(t, res.Success, "build year in the future must fail")
}

func TestShortTermRate(t *testing.T) {
	in := vessel.Input{
		PreviousThicknessIn: 0.46,
		CurrentThicknessIn:  0.45,
		PreviousInspection:  "2020-03-15",
		CurrentInspection:   "2025-03-15",
	}
	res := ShortTermRate(in)
	require.True(t, res.Success, "error: %s", res.Error)
	// Five calendar years, day-count over 365.25.
	assert.InDelta(t, 0.01/res.Intermediates["years"], *res.Value, 1e-9)
	assert.InDelta(t, 5.0, res.Intermediates["years"], 0.01)
}

func TestShortTermRateBadDates(t *testing.T) {
	in := vessel.Input{
		PreviousThicknessIn: 0.46,
		CurrentThicknessIn:  0.45,
		PreviousInspection:  "2025-03-15",
		CurrentInspection:   "2020-03-15",
	}
	res := ShortTermRate(in)
	assert.False(t, res.Success, "reversed dates must fail")

	in.PreviousInspection = "not a date"
	res = ShortTermRate(in)
	assert.False(t, res.Success)
}

func TestGoverningRate(t *testing.T) {
	mk := func(v float64) *vessel.Result {
		r := vessel.NewResult(vessel.CalcCorrosionRateLT)
		r.SetValue(v, "in/yr")
		return &r
	}
	gov, ok := GoverningRate(mk(0.003), mk(0.005))
	require.True(t, ok)
	assert.Equal(t, "ST", gov.Source)
	assert.Equal(t, 0.005, gov.RateInPerYr)

	gov, ok = GoverningRate(mk(0.007), mk(0.005))
	require.True(t, ok)
	assert.Equal(t, "LT", gov.Source)

	gov, ok = GoverningRate(mk(0.004), nil)
	require.True(t, ok)
	assert.Equal(t, "LT", gov.Source)

	failed := vessel.NewResult(vessel.CalcCorrosionRateST)
	failed.Fail("missing inputs")
	gov, ok = GoverningRate(mk(0.004), &failed)
	require.True(t, ok)
	assert.Equal(t, "LT", gov.Source)

	_, ok = GoverningRate(nil, &failed)
	assert.False(t, ok)
}

func TestLife(t *testing.T) {
	res, rl := Life(0.45, 0.18, Governing{RateInPerYr: 0.005, Source: "LT"})
	require.True(t, res.Success, "error: %s", res.Error)
	assert.False(t, rl.Infinite)
	assert.InDelta(t, 54, rl.Years, 0.01)
	assert.InDelta(t, 54, *res.Value, 0.01)
}

func TestLifeAtOrBelowRequiredIsHardError(t *testing.T) {
	for _, tCur := range []float64{0.18, 0.15} {
		res, rl := Life(tCur, 0.18, Governing{RateInPerYr: 0.005})
		assert.False(t, res.Success)
		assert.Equal(t, vessel.StatusError, res.ValidationStatus)
		assert.False(t, rl.Infinite)
		assert.Zero(t, rl.Years)
	}
}

func TestLifeZeroRateIsInfinite(t *testing.T) {
	res, rl := Life(0.45, 0.18, Governing{RateInPerYr: 0})
	require.True(t, res.Success)
	assert.True(t, rl.Infinite)
	assert.Nil(t, res.Value)
	assert.True(t, vessel.HasNote(res.Assumptions, vessel.NoteNoCorrosionMeasured))
}

func TestLifeWarningBands(t *testing.T) {
	res, _ := Life(0.19, 0.18, Governing{RateInPerYr: 0.01}) // 1 year
	assert.True(t, vessel.HasNote(res.Warnings, vessel.NoteRemainingLifeCritical))

	res, _ = Life(0.21, 0.18, Governing{RateInPerYr: 0.01}) // 3 years
	assert.True(t, vessel.HasNote(res.Warnings, vessel.NoteRemainingLifeCaution))

	res, _ = Life(0.30, 0.18, Governing{RateInPerYr: 0.01}) // 12 years
	assert.Empty(t, res.Warnings)
}

func TestNextIntervalBands(t *testing.T) {
	tests := []struct {
		rl   float64
		want float64
	}{
		{0, 0},
		{-1, 0},
		{1, 1},
		{1.9, 1.9},
		{2, 2},
		{3, 2},
		{4, 2}, // inclusive boundary stays in the fixed-2 branch
		{5, 2.5},
		{19.9, 9.95},
		{20, 10},
		{54, 10},
	}
	for _, tc := range tests {
		res := NextInterval(vessel.LifeYears(tc.rl))
		require.True(t, res.Success, "RL=%v", tc.rl)
		assert.InDelta(t, tc.want, *res.Value, 1e-9, "RL=%v", tc.rl)
	}
}

func TestNextIntervalImmediate(t *testing.T) {
	res := NextInterval(vessel.LifeYears(0))
	assert.True(t, vessel.HasNote(res.Warnings, vessel.NoteImmediateInspection))
}

func TestNextIntervalInfiniteLife(t *testing.T) {
	res := NextInterval(vessel.InfiniteLife())
	require.True(t, res.Success)
	assert.InDelta(t, 10, *res.Value, 1e-9)
}

func projInput() vessel.Input {
	return vessel.Input{
		Component:          vessel.ComponentShell,
		InsideDiameterIn:   48,
		DesignPressurePSI:  150,
		DesignTempF:        100,
		MaterialSpec:       "SA-516-70",
		JointEfficiency:    1.0,
		CurrentThicknessIn: 0.375,
	}
}

func TestProjectedMAWP(t *testing.T) {
	res := ProjectedMAWP(projInput(), vessel.Options{}, 10, Governing{RateInPerYr: 0.005, Source: "LT"})
	require.True(t, res.Success, "error: %s", res.Error)
	// t_proj = 0.375 - 2*10*0.005 = 0.275
	assert.InDelta(t, 0.275, res.Intermediates["t_projected"], 1e-9)
	want := 20000 * 0.275 / (24 + 0.6*0.275)
	assert.InDelta(t, want, *res.Value, 0.01)
}

func TestProjectedMAWPStaticHeadDeduction(t *testing.T) {
	in := projInput()
	in.Orientation = vessel.OrientationVertical
	in.SpecificGravity = 1.0
	in.LiquidHeightIn = 120
	res := ProjectedMAWP(in, vessel.Options{}, 2, Governing{RateInPerYr: 0.005})
	require.True(t, res.Success)
	assert.InDelta(t, 10*0.433, res.Intermediates["static_head_deduction_psi"], 1e-9)
	assert.True(t, vessel.HasNote(res.Assumptions, vessel.NoteStaticHeadDeducted))

	in.Orientation = vessel.OrientationHorizontal
	res = ProjectedMAWP(in, vessel.Options{}, 2, Governing{RateInPerYr: 0.005})
	require.True(t, res.Success)
	// Horizontal charges the full bore: 48 in = 4 ft.
	assert.InDelta(t, 4*0.433, res.Intermediates["static_head_deduction_psi"], 1e-9)
}

func TestProjectedMAWPDepleted(t *testing.T) {
	res := ProjectedMAWP(projInput(), vessel.Options{}, 10, Governing{RateInPerYr: 0.05})
	require.True(t, res.Success)
	assert.Zero(t, *res.Value)
	assert.True(t, vessel.HasNote(res.Warnings, vessel.NoteProjectedDepleted))
}

func TestAssessFullChain(t *testing.T) {
	in := projInput()
	in.NominalThicknessIn = 0.5
	in.YearBuilt = 2010
	in.CurrentInspection = "2025-03-15"
	in.PreviousThicknessIn = 0.40
	in.PreviousInspection = "2020-03-15"

	a := Assess(in, vessel.Options{}, 0.18, testNow)
	require.NotNil(t, a.LT)
	require.NotNil(t, a.ST)
	require.NotNil(t, a.Governing)
	// ST loses 0.025/5yr = 0.005 > LT 0.0083? LT = (0.5-0.375)/15 = 0.00833.
	assert.Equal(t, "LT", a.Governing.Source)
	require.NotNil(t, a.Life)
	require.NotNil(t, a.Interval)
	require.NotNil(t, a.Projected)
}

func TestAssessSkipsWhenNoCorrosionData(t *testing.T) {
	a := Assess(projInput(), vessel.Options{}, 0.18, testNow)
	assert.Nil(t, a.LT)
	assert.Nil(t, a.ST)
	assert.Nil(t, a.Governing)
	assert.Nil(t, a.Life)
	assert.Nil(t, a.Interval)
	assert.Nil(t, a.Projected)
}

func TestAssessPartialInputsFailThatStageOnly(t *testing.T) {
	in := projInput()
	in.NominalThicknessIn = 0.5 // year built missing
	a := Assess(in, vessel.Options{}, 0.18, testNow)
	require.NotNil(t, a.LT)
	assert.False(t, a.LT.Success)
	assert.Nil(t, a.Governing)
}
