package corrosion

import (
	"encoding/json"
	"net/http"
	"time"

	"Plenum/internal/calc/geometry"
	"Plenum/internal/calc/vessel"
)

type Handler struct {
	Opts vessel.Options
}

type response struct {
	TRequired vessel.Result `json:"t_required"`
	Assessment
}

// Calc serves the corrosion/life chain for one component. Required thickness
// is computed first because remaining life is measured against it.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input vessel.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	tReq := geometry.RequiredThickness(input, h.Opts)
	out := response{TRequired: tReq}
	tRequired := 0.0
	if tReq.Success && tReq.Value != nil {
		tRequired = *tReq.Value
	}
	out.Assessment = Assess(input, h.Opts, tRequired, time.Now().UTC())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
