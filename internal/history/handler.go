package history

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	auth "github.com/Universe-Codex/PhyArch/internal/auth"
	"github.com/Universe-Codex/PhyArch/internal/engine"
	"github.com/Universe-Codex/PhyArch/internal/repo"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo repo.Repository
}

type SaveRequest struct {
	Export string    `json:"export"`
	Args   []float64 `json:"args"`
}

type SaveResponse struct {
	ID    int     `json:"id"`
	Value float64 `json:"value"`
}

// Save records a named calculation for the logged-in user. The stored value
// is whatever the export table returns, sentinel included, so the history is
// a faithful replay of what the caller saw.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if _, known := engine.Resolve(req.Export); !known {
		http.Error(w, "Unknown export", http.StatusBadRequest)
		return
	}

	value := engine.Call(req.Export, req.Args...)
	id, err := h.Repo.SaveCalculation(r.Context(), userID, repo.Calculation{
		Export: req.Export,
		Args:   req.Args,
		Value:  value,
	})
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SaveResponse{ID: id, Value: value})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	calcs, err := h.Repo.ListCalculations(r.Context(), userID)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if calcs == nil {
		calcs = []repo.Calculation{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(calcs)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteCalculation(r.Context(), userID, id); err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
