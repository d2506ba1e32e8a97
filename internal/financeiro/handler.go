// internal/financeiro/handler.go
package financeiro

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/VianaAdvocacia/api-escritorio/internal/auth"
	"github.com/VianaAdvocacia/api-escritorio/internal/erros"
	"github.com/VianaAdvocacia/api-escritorio/internal/pagamento"
	"github.com/gorilla/mux"
)

// Historiador registra eventos na linha do tempo do processo.
type Historiador interface {
	Registrar(processoID uint, acao, detalhes, usuario string)
}

// Handler encapsula o serviço e o repositório de lançamentos.
type Handler struct {
	Repo      *Repository
	Servico   *Servico
	Historico Historiador
}

func NewHandler(repo *Repository, servico *Servico, historico Historiador) *Handler {
	return &Handler{Repo: repo, Servico: servico, Historico: historico}
}

// POST /financeiro
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var l Lancamento
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	l.ID = 0

	if err := h.Servico.Criar(&l); err != nil {
		http.Error(w, err.Error(), erros.StatusHTTP(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(l)
}

// GET /financeiro?processoId=&clienteId=&tipo=&pago=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var f Filtros
	if v := r.URL.Query().Get("processoId"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			f.ProcessoID = uint(id)
		}
	}
	if v := r.URL.Query().Get("clienteId"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			f.ClienteID = uint(id)
		}
	}
	f.Tipo = r.URL.Query().Get("tipo")
	if v := r.URL.Query().Get("pago"); v != "" {
		pago := v == "true"
		f.Pago = &pago
	}

	list, err := h.Repo.Listar(f)
	if err != nil {
		http.Error(w, "erro ao listar lançamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// PUT /financeiro/{id}/pagamento — transição Pendente→Pago.
// Lançamentos do razão não aceitam custeio por saldo interno (exclusivo
// das despesas do escritório).
func (h *Handler) ConfirmarPagamento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do lançamento inválido", http.StatusBadRequest)
		return
	}
	l, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Lançamento não encontrado", http.StatusNotFound)
		return
	}

	var dto pagamento.FormaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	forma, err := dto.Forma()
	if err != nil {
		http.Error(w, err.Error(), erros.StatusHTTP(err))
		return
	}
	if forma.Meio() == pagamento.MeioSaldo {
		http.Error(w, "lançamentos não aceitam custeio por saldo interno", http.StatusBadRequest)
		return
	}

	if err := pagamento.Confirmar(l, forma, time.Now()); err != nil {
		http.Error(w, err.Error(), erros.StatusHTTP(err))
		return
	}
	if err := h.Repo.Atualizar(l); err != nil {
		http.Error(w, "erro ao confirmar pagamento", http.StatusInternalServerError)
		return
	}
	if l.ProcessoID != nil {
		h.Historico.Registrar(*l.ProcessoID, "pagamento de lançamento", l.Titulo, auth.NomeUsuario(r.Context()))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(l)
}

// DELETE /financeiro/{id} — não cascateia para recibos vinculados.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do lançamento inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeletarPorID(uint(id)); err != nil {
		http.Error(w, "Lançamento não encontrado", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
