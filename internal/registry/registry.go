// Package registry stores vessel component records and replays the
// calculation engine against them. It does not validate input provenance;
// that belongs to the extraction/validation layer upstream.
package registry

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"Plenum/internal/audit"
	"Plenum/internal/auth"
	"Plenum/internal/calc/fullcalc"
	"Plenum/internal/calc/vessel"
	repo "Plenum/internal/repo"
)

type Handler struct {
	Repo     repo.ComponentRepository
	Opts     vessel.Options
	Recorder audit.Recorder
	Log      *zap.Logger
}

type saveRequest struct {
	ID        string       `json:"id"`
	VesselTag string       `json:"vessel_tag"`
	Input     vessel.Input `json:"input"`
}

// Save upserts a component record.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		http.Error(w, "Component id required", http.StatusBadRequest)
		return
	}
	req.Input.ComponentID = req.ID

	rec := repo.ComponentRecord{
		ID:        req.ID,
		VesselTag: req.VesselTag,
		Input:     req.Input,
		UpdatedBy: auth.LoginFromContext(r.Context()),
		UpdatedAt: time.Now().UTC(),
	}
	if err := h.Repo.SaveComponent(r.Context(), rec); err != nil {
		h.Log.Error("save component", zap.String("id", req.ID), zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(rec)
}

// Get returns one stored component record.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rec, err := h.Repo.GetComponent(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Component not found", http.StatusNotFound)
			return
		}
		h.Log.Error("get component", zap.String("id", id), zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

// List returns stored components, optionally filtered by ?vessel= tag.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Repo.ListComponents(r.Context(), r.URL.Query().Get("vessel"))
	if err != nil {
		h.Log.Error("list components", zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recs)
}

// Calc replays the engine against a stored component record and audits the
// run under the stored component id.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rec, err := h.Repo.GetComponent(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Component not found", http.StatusNotFound)
			return
		}
		h.Log.Error("get component", zap.String("id", id), zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	res := fullcalc.Calculate(rec.Input, h.Opts)
	if h.Recorder != nil {
		user := auth.LoginFromContext(r.Context())
		_ = h.Recorder.Record(r.Context(), audit.EntryFor(user, rec.Input, res))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
