package geometry

import (
	"encoding/json"
	"net/http"

	"Plenum/internal/calc/vessel"
)

type Handler struct {
	Opts vessel.Options
}

// Thickness serves a single required-thickness calculation. Engine failures
// are domain results, not HTTP errors: the Result carries its own status.
func (h *Handler) Thickness(w http.ResponseWriter, r *http.Request) {
	var input vessel.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := RequiredThickness(input, h.Opts)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// MAWP serves a single MAWP calculation at current thickness.
func (h *Handler) MAWP(w http.ResponseWriter, r *http.Request) {
	var input vessel.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := MAWP(input, h.Opts)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
