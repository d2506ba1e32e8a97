// internal/recibo/handler.go
package recibo

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/VianaAdvocacia/api-escritorio/internal/erros"
	"github.com/gorilla/mux"
)

// Handler encapsula o serviço e o repositório de recibos.
type Handler struct {
	Repo    Repository
	Servico *Servico
}

func NewHandler(repo Repository, servico *Servico) *Handler {
	return &Handler{Repo: repo, Servico: servico}
}

// POST /recibos — gera um recibo a partir de comissões sem recibo.
func (h *Handler) Gerar(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CaptadorNome  string `json:"captadorNome"`
		CpfCaptador   string `json:"cpfCaptador"`
		LancamentoIDs []uint `json:"lancamentoIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	rec, err := h.Servico.Gerar(payload.CaptadorNome, payload.CpfCaptador, payload.LancamentoIDs)
	if err != nil {
		http.Error(w, err.Error(), erros.StatusHTTP(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(rec)
}

// GET /recibos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "erro ao listar recibos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /recibos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do recibo inválido", http.StatusBadRequest)
		return
	}
	rec, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Recibo não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rec)
}

// PUT /recibos/{id}/assinatura
func (h *Handler) Assinar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do recibo inválido", http.StatusBadRequest)
		return
	}
	rec, err := h.Servico.Assinar(uint(id))
	if err != nil {
		http.Error(w, err.Error(), erros.StatusHTTP(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rec)
}

// PUT /recibos/{id}/arquivo
func (h *Handler) AnexarArquivo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do recibo inválido", http.StatusBadRequest)
		return
	}
	var payload struct {
		ArquivoURL string `json:"arquivoUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	rec, err := h.Servico.AnexarArquivo(uint(id), payload.ArquivoURL)
	if err != nil {
		http.Error(w, err.Error(), erros.StatusHTTP(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rec)
}

// DELETE /recibos/{id} — desvincula os lançamentos e apaga o recibo.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do recibo inválido", http.StatusBadRequest)
		return
	}
	if err := h.Servico.Deletar(uint(id)); err != nil {
		http.Error(w, err.Error(), erros.StatusHTTP(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
