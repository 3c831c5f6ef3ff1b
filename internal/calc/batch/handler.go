package batch

import (
	"encoding/json"
	"net/http"

	"Plenum/internal/calc/vessel"
)

type Handler struct {
	Opts vessel.Options
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input, h.Opts)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
