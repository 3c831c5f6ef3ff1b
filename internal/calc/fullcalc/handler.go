package fullcalc

import (
	"encoding/json"
	"net/http"

	"Plenum/internal/audit"
	"Plenum/internal/auth"
	"Plenum/internal/calc/vessel"
)

type Handler struct {
	Opts     vessel.Options
	Recorder audit.Recorder // optional; wrap in audit.AsyncRecorder so calls never block
}

// Calc serves the full per-component bundle and appends an audit record.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input vessel.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	res := Calculate(input, h.Opts)

	if h.Recorder != nil {
		user := auth.LoginFromContext(r.Context())
		_ = h.Recorder.Record(r.Context(), audit.EntryFor(user, input, res))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
