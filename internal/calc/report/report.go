// Package report renders calculation results for the record copy: a PDF
// suitable for an inspection file, and an XLSX summary for trend analysis.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"

	"Plenum/internal/calc/matdb"
	"Plenum/internal/calc/vessel"
)

// Meta is the report cover information.
type Meta struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

// BuildPDF lays out one component's full calculation: summary verdict first,
// then each sub-calculation with its formula and intermediates so the numbers
// can be checked by hand.
func BuildPDF(meta Meta, in vessel.Input, full vessel.FullResult) *gofpdf.Fpdf {
	if meta.Title == "" {
		meta.Title = "Pressure Vessel Calculation Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Component: %s", in.ComponentID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Engine %s / Material DB %s", vessel.EngineVersion, matdb.Version))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Overall: %s", full.Summary.Status))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, full.Summary.Reason, "", "L", false)
	pdf.Ln(4)

	writeResult(pdf, "Required Thickness", &full.TRequired)
	writeResult(pdf, "MAWP", &full.MAWP)
	writeResult(pdf, "Corrosion Rate (long-term)", full.CorrosionLT)
	writeResult(pdf, "Corrosion Rate (short-term)", full.CorrosionST)
	writeResult(pdf, "Remaining Life", full.RemainingLife)
	writeResult(pdf, "Next Inspection Interval", full.NextInspection)
	writeResult(pdf, "Projected MAWP at Next Inspection", full.ProjectedMAWP)

	if len(full.Warnings) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Warnings")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, n := range full.Warnings {
			pdf.MultiCell(0, 5, "- "+n.Message(), "", "L", false)
		}
		pdf.Ln(2)
	}

	if meta.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, meta.Notes, "", "L", false)
	}
	return pdf
}

func writeResult(pdf *gofpdf.Fpdf, title string, res *vessel.Result) {
	if res == nil {
		return
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)

	if !res.Success {
		pdf.MultiCell(0, 5, "FAILED: "+res.Error, "", "L", false)
		pdf.Ln(2)
		return
	}
	if res.Value != nil {
		pdf.Cell(0, 5, fmt.Sprintf("Result: %.4f %s", *res.Value, res.Unit))
		pdf.Ln(5)
	}
	if res.CodeReference != "" {
		pdf.Cell(0, 5, fmt.Sprintf("Reference: %s", res.CodeReference))
		pdf.Ln(5)
	}
	if res.Formula != "" {
		pdf.Cell(0, 5, fmt.Sprintf("Formula: %s", res.Formula))
		pdf.Ln(5)
	}
	for _, k := range sortedKeys(res.Intermediates) {
		pdf.Cell(0, 5, fmt.Sprintf("  %s = %.6g", k, res.Intermediates[k]))
		pdf.Ln(5)
	}
	for _, n := range res.Assumptions {
		pdf.MultiCell(0, 5, "  assumption: "+n.Message(), "", "L", false)
	}
	pdf.Ln(2)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var xlsxHeader = []string{
	"Component", "Status", "Reason", "t required (in)", "MAWP (psi)",
	"Governing rate (in/yr)", "Rate source", "Remaining life (yr)",
	"Next inspection (yr)", "Warnings",
}

// BuildXLSX writes one summary row per component.
func BuildXLSX(results []vessel.FullResult) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for col, h := range xlsxHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, full := range results {
		row := []any{
			full.ComponentID,
			string(full.Summary.Status),
			full.Summary.Reason,
			floatCell(full.Summary.TRequiredIn),
			floatCell(full.Summary.MAWPPSI),
			floatCell(full.Summary.GoverningRateInPerYr),
			full.Summary.GoverningRateSource,
			lifeCell(full.Summary.RemainingLife),
			floatCell(full.Summary.NextInspectionYears),
			len(full.Warnings),
		}
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

func floatCell(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func lifeCell(rl *vessel.RemainingLife) any {
	if rl == nil {
		return ""
	}
	if rl.Infinite {
		return "infinite"
	}
	return rl.Years
}
