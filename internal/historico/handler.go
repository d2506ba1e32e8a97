// internal/historico/handler.go
package historico

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Handler expõe a leitura da linha do tempo.
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// GET /processos/{id}/historico
func (h *Handler) ListarPorProcesso(w http.ResponseWriter, r *http.Request) {
	processoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do processo inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repo.ListarPorProcesso(uint(processoID))
	if err != nil {
		http.Error(w, "erro ao listar histórico", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}
