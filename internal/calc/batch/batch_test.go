package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Plenum/internal/calc/vessel"
)

func item(id string, tCurrent float64) vessel.Input {
	return vessel.Input{
		ComponentID:        id,
		Component:          vessel.ComponentShell,
		InsideDiameterIn:   48,
		DesignPressurePSI:  150,
		DesignTempF:        100,
		MaterialSpec:       "SA-516-70",
		JointEfficiency:    1.0,
		CurrentThicknessIn: tCurrent,
	}
}

func TestCalculateEmpty(t *testing.T) {
	_, err := Calculate(Input{}, vessel.Options{})
	assert.Error(t, err)
}

func TestGoverningComponentIsLowestMAWP(t *testing.T) {
	in := Input{Items: []vessel.Input{
		item("shell-a", 0.45),
		item("shell-b", 0.30), // thinnest wall, lowest MAWP
		item("shell-c", 0.60),
	}}
	res, err := Calculate(in, vessel.Options{})
	require.NoError(t, err)
	require.Len(t, res.Results, 3)
	assert.Equal(t, "shell-b", res.GoverningComponent)
	require.NotNil(t, res.GoverningMAWPPSI)
	assert.InDelta(t, 20000*0.30/(24+0.18), *res.GoverningMAWPPSI, 0.1)
	assert.Equal(t, vessel.StatusAcceptable, res.Status)
}

func TestWorstStatusPropagates(t *testing.T) {
	in := Input{Items: []vessel.Input{
		item("ok", 0.45),
		item("thin", 0.15), // below required thickness
	}}
	res, err := Calculate(in, vessel.Options{})
	require.NoError(t, err)
	assert.Equal(t, vessel.StatusUnacceptable, res.Status)
}
