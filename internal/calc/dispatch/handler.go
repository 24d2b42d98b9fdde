package dispatch

import (
	"encoding/json"
	"net/http"

	"github.com/Universe-Codex/PhyArch/internal/engine"
)

// Handler exposes the raw export table: the same resolve-by-name surface a
// wasm host binding layer uses, reachable over HTTP.
type Handler struct{}

type CallInput struct {
	Export string    `json:"export"`
	Args   []float64 `json:"args"`
}

type CallResult struct {
	Export string  `json:"export"`
	Value  float64 `json:"value"`
}

type ExportInfo struct {
	Name  string `json:"name"`
	Arity int    `json:"arity"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var infos []ExportInfo
	for _, name := range engine.Names() {
		e, _ := engine.Resolve(name)
		infos = append(infos, ExportInfo{Name: e.Name, Arity: e.Arity})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(infos)
}

func (h *Handler) Call(w http.ResponseWriter, r *http.Request) {
	var input CallInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	// Unknown names and wrong arities degrade to the sentinel, exactly as
	// they do for a wasm host.
	res := CallResult{
		Export: input.Export,
		Value:  engine.Call(input.Export, input.Args...),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
