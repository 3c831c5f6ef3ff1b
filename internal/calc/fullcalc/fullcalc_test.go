package fullcalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Plenum/internal/calc/vessel"
)

var testNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func shellInput() vessel.Input {
	return vessel.Input{
		ComponentID:        "V-101-shell",
		Component:          vessel.ComponentShell,
		InsideDiameterIn:   48,
		DesignPressurePSI:  150,
		DesignTempF:        100,
		MaterialSpec:       "SA-516 Gr 70",
		JointEfficiency:    1.0,
		NominalThicknessIn: 0.5,
		CurrentThicknessIn: 0.45,
		YearBuilt:          2010,
		CurrentInspection:  "2025-03-15",
	}
}

func TestFullCalculation(t *testing.T) {
	full := CalculateAt(shellInput(), vessel.Options{}, testNow)
	require.True(t, full.Success)
	assert.Equal(t, "V-101-shell", full.ComponentID)

	require.NotNil(t, full.Summary.TRequiredIn)
	assert.InDelta(t, 0.1808, *full.Summary.TRequiredIn, 0.0001)
	require.NotNil(t, full.Summary.MAWPPSI)
	// MAWP at 0.45 in: 20000*0.45/(24+0.27).
	assert.InDelta(t, 370.8, *full.Summary.MAWPPSI, 0.1)

	require.NotNil(t, full.CorrosionLT)
	require.NotNil(t, full.Summary.GoverningRateInPerYr)
	assert.Equal(t, "LT", full.Summary.GoverningRateSource)
	assert.InDelta(t, (0.5-0.45)/15, *full.Summary.GoverningRateInPerYr, 1e-9)

	require.NotNil(t, full.Summary.RemainingLife)
	assert.False(t, full.Summary.RemainingLife.Infinite)
	// RL = (0.45 - 0.1808)/0.003333 ~ 80.7 yr; interval capped at 10.
	assert.Greater(t, full.Summary.RemainingLife.Years, 50.0)
	require.NotNil(t, full.Summary.NextInspectionYears)
	assert.InDelta(t, 10, *full.Summary.NextInspectionYears, 1e-9)

	assert.Equal(t, vessel.StatusAcceptable, full.Summary.Status)
	require.NotNil(t, full.ProjectedMAWP)
	assert.True(t, full.ProjectedMAWP.Success)
}

func TestDerivedCorrosionAllowance(t *testing.T) {
	full := CalculateAt(shellInput(), vessel.Options{}, testNow)
	assert.True(t, vessel.HasNote(full.Warnings, vessel.NoteDerivedCorrosionAllow))

	in := shellInput()
	in.CorrosionAllowanceIn = 0.125
	full = CalculateAt(in, vessel.Options{}, testNow)
	assert.False(t, vessel.HasNote(full.Warnings, vessel.NoteDerivedCorrosionAllow),
		"supplied corrosion allowance must not be re-derived")
}

func TestThicknessBelowRequiredIsUnacceptable(t *testing.T) {
	in := shellInput()
	in.CurrentThicknessIn = 0.15 // below the ~0.1808 required
	full := CalculateAt(in, vessel.Options{}, testNow)
	assert.Equal(t, vessel.StatusUnacceptable, full.Summary.Status)
	require.NotNil(t, full.RemainingLife)
	assert.False(t, full.RemainingLife.Success, "remaining life at depleted wall is a hard error")
	require.NotNil(t, full.Summary.RemainingLife)
	assert.Zero(t, full.Summary.RemainingLife.Years)
	require.NotNil(t, full.Summary.NextInspectionYears)
	assert.Zero(t, *full.Summary.NextInspectionYears)
}

func TestMarginalOnShortRemainingLife(t *testing.T) {
	in := shellInput()
	// Heavy corrosion: 0.30 in lost since 2010 -> 0.02 in/yr.
	// RL = (0.20 - 0.1808)/0.02 ~ 0.96 yr -> unacceptable.
	in.CurrentThicknessIn = 0.20
	full := CalculateAt(in, vessel.Options{}, testNow)
	assert.Equal(t, vessel.StatusUnacceptable, full.Summary.Status)

	// Milder: RL between 2 and 4 years is marginal.
	in = shellInput()
	in.NominalThicknessIn = 0.5
	in.CurrentThicknessIn = 0.21
	// rate = 0.29/15 ~ 0.01933; RL = (0.21-0.1808)/0.01933 ~ 1.51 -> still unacceptable
	in.YearBuilt = 1995
	// rate = 0.29/30 ~ 0.009667; RL ~ 3.02 -> marginal
	full = CalculateAt(in, vessel.Options{}, testNow)
	assert.Equal(t, vessel.StatusMarginal, full.Summary.Status)
	assert.True(t, vessel.HasNote(full.Warnings, vessel.NoteRemainingLifeCaution))
}

func TestPartialSuccessPreserved(t *testing.T) {
	in := shellInput()
	in.MaterialSpec = "unobtainium"
	full := CalculateAt(in, vessel.Options{}, testNow)
	assert.False(t, full.Success)
	assert.False(t, full.TRequired.Success)
	assert.False(t, full.MAWP.Success)
	assert.Equal(t, vessel.StatusUnacceptable, full.Summary.Status)
	// The corrosion rates do not depend on the stress lookup and survive.
	require.NotNil(t, full.CorrosionLT)
	assert.True(t, full.CorrosionLT.Success)
}

func TestNoCorrosionDataSkipsChain(t *testing.T) {
	in := shellInput()
	in.NominalThicknessIn = 0
	in.YearBuilt = 0
	full := CalculateAt(in, vessel.Options{}, testNow)
	require.True(t, full.Success)
	assert.Nil(t, full.CorrosionLT)
	assert.Nil(t, full.RemainingLife)
	assert.Nil(t, full.NextInspection)
	assert.Equal(t, vessel.StatusAcceptable, full.Summary.Status)
}

func TestWarningsAreUnioned(t *testing.T) {
	in := shellInput()
	in.MaterialSpec = ""
	in.AllowableStressPSI = 20000
	full := CalculateAt(in, vessel.Options{}, testNow)
	// Stress override is warned on both t_required and MAWP; the union keeps
	// every occurrence visible.
	count := 0
	for _, n := range full.Warnings {
		if n.Code == vessel.NoteStressOverride {
			count++
		}
	}
	assert.GreaterOrEqual(t, count, 2)
}

func TestHeadBundle(t *testing.T) {
	in := shellInput()
	in.Component = vessel.ComponentHead
	in.HeadType = vessel.HeadTorispherical
	in.CrownRadiusIn = 48
	in.KnuckleRadiusIn = 2.88
	full := CalculateAt(in, vessel.Options{}, testNow)
	require.True(t, full.Success)
	assert.Equal(t, "ASME VIII-1 UG-32(e)", full.TRequired.CodeReference)
	assert.Equal(t, "ASME VIII-1 UG-32(e)", full.MAWP.CodeReference)
}
