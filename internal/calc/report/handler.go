package report

import (
	"encoding/json"
	"net/http"

	"Plenum/internal/calc/fullcalc"
	"Plenum/internal/calc/vessel"
)

type Handler struct {
	Opts vessel.Options
}

type pdfRequest struct {
	Meta
	Input vessel.Input `json:"input"`
}

type xlsxRequest struct {
	Items []vessel.Input `json:"items"`
}

// PDF runs the full calculation and streams the record-copy report.
func (h *Handler) PDF(w http.ResponseWriter, r *http.Request) {
	var req pdfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	full := fullcalc.Calculate(req.Input, h.Opts)
	pdf := BuildPDF(req.Meta, req.Input, full)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"calculation-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

// XLSX runs the full calculation per item and streams the summary workbook.
func (h *Handler) XLSX(w http.ResponseWriter, r *http.Request) {
	var req xlsxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(req.Items) == 0 {
		http.Error(w, "No items", http.StatusBadRequest)
		return
	}

	results := make([]vessel.FullResult, 0, len(req.Items))
	for _, item := range req.Items {
		results = append(results, fullcalc.Calculate(item, h.Opts))
	}
	f, err := BuildXLSX(results)
	if err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"calculation-summary.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
