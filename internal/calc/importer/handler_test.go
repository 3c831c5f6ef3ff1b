package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Plenum/internal/calc/vessel"
)

func TestParseRow(t *testing.T) {
	row := []string{
		"V-101-shell", "shell", "", "48", "150", "100", "SA-516 Gr 70", "1.0",
		"0.5", "0.45", "0.46", "2010", "2025-03-15", "2020-03-15",
	}
	in, err := ParseRow(row)
	require.NoError(t, err)
	assert.Equal(t, "V-101-shell", in.ComponentID)
	assert.Equal(t, vessel.ComponentShell, in.Component)
	assert.Equal(t, 48.0, in.InsideDiameterIn)
	assert.Equal(t, 150.0, in.DesignPressurePSI)
	assert.Equal(t, "SA-516 Gr 70", in.MaterialSpec)
	assert.Equal(t, 0.45, in.CurrentThicknessIn)
	assert.Equal(t, 2010, in.YearBuilt)
	assert.Equal(t, "2025-03-15", in.CurrentInspection)
}

func TestParseRowOptionalCellsEmpty(t *testing.T) {
	row := []string{
		"E-7-head", "head", "torispherical", "48", "150", "100", "SA-516-70", "0.85",
		"", "0.45",
	}
	in, err := ParseRow(row)
	require.NoError(t, err)
	assert.Equal(t, vessel.HeadTorispherical, in.HeadType)
	assert.Zero(t, in.NominalThicknessIn)
	assert.Zero(t, in.YearBuilt)
}

func TestParseRowCommaDecimal(t *testing.T) {
	row := []string{
		"V-1", "shell", "", "48", "150", "100", "SA-516-70", "1,0",
		"0,5", "0,45",
	}
	in, err := ParseRow(row)
	require.NoError(t, err)
	assert.Equal(t, 0.45, in.CurrentThicknessIn)
}

func TestParseRowErrors(t *testing.T) {
	_, err := ParseRow([]string{"too", "short"})
	assert.Error(t, err)

	row := []string{
		"V-1", "shell", "", "not-a-number", "150", "100", "SA-516-70", "1.0",
		"0.5", "0.45",
	}
	_, err = ParseRow(row)
	assert.Error(t, err)
}
