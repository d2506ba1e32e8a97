// internal/processo/handler.go
package processo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/VianaAdvocacia/api-escritorio/internal/auth"
	"github.com/VianaAdvocacia/api-escritorio/internal/erros"
	"github.com/VianaAdvocacia/api-escritorio/internal/pagamento"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// Historiador registra eventos na linha do tempo do processo. O registro é
// melhor esforço e nunca bloqueia a operação principal.
type Historiador interface {
	Registrar(processoID uint, acao, detalhes, usuario string)
}

type criarProcessoRequest struct {
	ClienteID      uint            `json:"clienteId" validate:"required"`
	Titulo         string          `json:"titulo" validate:"required"`
	NumeroProcesso string          `json:"numeroProcesso"`
	Tribunal       string          `json:"tribunal"`
	Tipo           string          `json:"tipo"`
	Descricao      string          `json:"descricao"`
	Status         string          `json:"status"`
	ValorCausa     decimal.Decimal `json:"valorCausa"`
	DataEntrada    time.Time       `json:"dataEntrada"`
}

// Handler encapsula o repositório, o serviço de honorários e o historiador.
type Handler struct {
	Repo       *Repository
	Honorarios *ServicoHonorarios
	Historico  Historiador
}

func NewHandler(repo *Repository, honorarios *ServicoHonorarios, historico Historiador) *Handler {
	return &Handler{Repo: repo, Honorarios: honorarios, Historico: historico}
}

// POST /processos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarProcessoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "cliente e título são obrigatórios", http.StatusBadRequest)
		return
	}
	if req.ValorCausa.IsNegative() {
		http.Error(w, "valor da causa não pode ser negativo", http.StatusBadRequest)
		return
	}

	p := Processo{
		ClienteID:      req.ClienteID,
		Titulo:         req.Titulo,
		NumeroProcesso: req.NumeroProcesso,
		Tribunal:       req.Tribunal,
		Tipo:           req.Tipo,
		Descricao:      req.Descricao,
		Status:         req.Status,
		ValorCausa:     req.ValorCausa,
		DataEntrada:    req.DataEntrada,
	}
	if p.Status == "" {
		p.Status = "A Protocolar"
	}
	if p.DataEntrada.IsZero() {
		p.DataEntrada = time.Now()
	}

	if err := h.Repo.Criar(&p); err != nil {
		http.Error(w, "erro ao criar processo", http.StatusInternalServerError)
		return
	}
	h.Historico.Registrar(p.ID, "criação", "processo cadastrado", auth.NomeUsuario(r.Context()))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// GET /processos?clienteId=&status=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var clienteID uint
	if v := r.URL.Query().Get("clienteId"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			clienteID = uint(id)
		}
	}
	list, err := h.Repo.ListarTodos(clienteID, r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, "erro ao listar processos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /processos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do processo inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Processo não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// PUT /processos/{id} — edição de dados cadastrais e status do caso.
// Mudança de status entra na linha do tempo do processo.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do processo inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Processo não encontrado", http.StatusNotFound)
		return
	}

	var payload struct {
		Titulo         string           `json:"titulo"`
		NumeroProcesso string           `json:"numeroProcesso"`
		Tribunal       string           `json:"tribunal"`
		Tipo           string           `json:"tipo"`
		Descricao      string           `json:"descricao"`
		Status         string           `json:"status"`
		ValorCausa     *decimal.Decimal `json:"valorCausa"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	statusAnterior := p.Status
	if payload.Titulo != "" {
		p.Titulo = payload.Titulo
	}
	if payload.NumeroProcesso != "" {
		p.NumeroProcesso = payload.NumeroProcesso
	}
	if payload.Tribunal != "" {
		p.Tribunal = payload.Tribunal
	}
	if payload.Tipo != "" {
		p.Tipo = payload.Tipo
	}
	if payload.Descricao != "" {
		p.Descricao = payload.Descricao
	}
	if payload.Status != "" {
		p.Status = payload.Status
	}
	if payload.ValorCausa != nil {
		if payload.ValorCausa.IsNegative() {
			http.Error(w, "valor da causa não pode ser negativo", http.StatusBadRequest)
			return
		}
		p.ValorCausa = *payload.ValorCausa
	}

	if err := h.Repo.Atualizar(p); err != nil {
		http.Error(w, "erro ao atualizar processo", http.StatusInternalServerError)
		return
	}
	if p.Status != statusAnterior {
		detalhes := fmt.Sprintf("status alterado de %q para %q", statusAnterior, p.Status)
		h.Historico.Registrar(p.ID, "mudança de status", detalhes, auth.NomeUsuario(r.Context()))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// PUT /processos/{id}/honorarios — marca os honorários como pagos.
func (h *Handler) MarcarHonorariosPagos(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do processo inválido", http.StatusBadRequest)
		return
	}

	var dto pagamento.FormaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	p, err := h.Honorarios.MarcarPago(uint(id), dto, time.Now())
	if err != nil {
		http.Error(w, err.Error(), erros.StatusHTTP(err))
		return
	}
	h.Historico.Registrar(p.ID, "honorários", "honorários marcados como pagos", auth.NomeUsuario(r.Context()))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// PUT /processos/{id}/status-pagamento
func (h *Handler) AtualizarStatusPagamento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do processo inválido", http.StatusBadRequest)
		return
	}

	var payload struct {
		StatusPagamento string `json:"statusPagamento"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	p, err := h.Honorarios.AtualizarStatusPagamento(uint(id), payload.StatusPagamento)
	if err != nil {
		http.Error(w, err.Error(), erros.StatusHTTP(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// DELETE /processos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do processo inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeletarPorID(uint(id)); err != nil {
		http.Error(w, "Processo não encontrado", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
