// Package importer ingests a thickness-survey workbook and runs the full
// calculation for every component row. Rows that fail to parse are skipped;
// bulk import is best-effort by design.
package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"Plenum/internal/calc/fullcalc"
	"Plenum/internal/calc/vessel"
)

type Handler struct {
	Opts vessel.Options
}

type ImportResult struct {
	Count   int                 `json:"count"`
	Skipped int                 `json:"skipped"`
	Results []vessel.FullResult `json:"results"`
}

// Components expects one header row followed by one row per component:
// id, component, head_type, inside_diameter_in, design_pressure_psi,
// design_temp_f, material, joint_efficiency, nominal_in, current_in,
// previous_in, year_built, current_inspection, previous_inspection.
func (h *Handler) Components(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	out := ImportResult{}
	for i := 1; i < len(rows); i++ {
		input, err := ParseRow(rows[i])
		if err != nil {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, fullcalc.Calculate(input, h.Opts))
		out.Count++
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// ParseRow maps one worksheet row onto a calculation input.
func ParseRow(row []string) (vessel.Input, error) {
	if len(row) < 10 {
		return vessel.Input{}, fmt.Errorf("row too short: %d cells", len(row))
	}
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	in := vessel.Input{
		ComponentID:  cell(0),
		Component:    vessel.Component(strings.ToLower(cell(1))),
		HeadType:     vessel.HeadType(strings.ToLower(cell(2))),
		MaterialSpec: cell(6),
	}

	var err error
	if in.InsideDiameterIn, err = toFloat(cell(3)); err != nil {
		return vessel.Input{}, err
	}
	if in.DesignPressurePSI, err = toFloat(cell(4)); err != nil {
		return vessel.Input{}, err
	}
	if in.DesignTempF, err = toFloat(cell(5)); err != nil {
		return vessel.Input{}, err
	}
	if in.JointEfficiency, err = toFloat(cell(7)); err != nil {
		return vessel.Input{}, err
	}
	if in.NominalThicknessIn, err = toFloatOpt(cell(8)); err != nil {
		return vessel.Input{}, err
	}
	if in.CurrentThicknessIn, err = toFloat(cell(9)); err != nil {
		return vessel.Input{}, err
	}
	if in.PreviousThicknessIn, err = toFloatOpt(cell(10)); err != nil {
		return vessel.Input{}, err
	}
	if yb := cell(11); yb != "" {
		if in.YearBuilt, err = strconv.Atoi(yb); err != nil {
			return vessel.Input{}, fmt.Errorf("year built: %w", err)
		}
	}
	in.CurrentInspection = cell(12)
	in.PreviousInspection = cell(13)
	return in, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

func toFloatOpt(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return toFloat(s)
}
