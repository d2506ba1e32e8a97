// internal/despesa/handler.go
package despesa

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/VianaAdvocacia/api-escritorio/internal/erros"
	"github.com/VianaAdvocacia/api-escritorio/internal/pagamento"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// Alocador custeia uma despesa com um saldo interno, verificando a
// capacidade restante. Implementado pelo motor de alocação de saldos.
type Alocador interface {
	Alocar(d *Despesa, saldoID uint) error
}

type criarDespesaRequest struct {
	Titulo      string             `json:"titulo" validate:"required"`
	Valor       decimal.Decimal    `json:"valor"`
	DataDespesa time.Time          `json:"dataDespesa"`
	Status      string             `json:"status" validate:"omitempty,oneof=Pago Pendente"`
	Observacao  string             `json:"observacao"`
	Pagador     string             `json:"pagador"`
	Forma       *pagamento.FormaDTO `json:"forma"`
}

type pagarDespesaRequest struct {
	Pagador string             `json:"pagador"`
	Forma   pagamento.FormaDTO `json:"forma"`
}

// Handler encapsula o repositório de despesas e o alocador de saldos.
type Handler struct {
	Repo     *Repository
	Alocador Alocador
}

func NewHandler(repo *Repository, alocador Alocador) *Handler {
	return &Handler{Repo: repo, Alocador: alocador}
}

// POST /despesas
// Criada como Pendente por padrão; pode nascer Paga com custeio externo ou
// por saldo (neste caso a alocação é verificada antes de qualquer escrita).
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarDespesaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "título é obrigatório e status deve ser Pago ou Pendente", http.StatusBadRequest)
		return
	}
	if req.Valor.LessThanOrEqual(decimal.Zero) {
		http.Error(w, "valor deve ser positivo", http.StatusBadRequest)
		return
	}
	if req.DataDespesa.IsZero() {
		http.Error(w, "data da despesa é obrigatória", http.StatusBadRequest)
		return
	}
	if req.Status == "" {
		req.Status = StatusPendente
	}

	d := Despesa{
		Titulo:      req.Titulo,
		Valor:       req.Valor,
		DataDespesa: req.DataDespesa,
		Status:      StatusPendente,
		Observacao:  req.Observacao,
	}

	if req.Status == StatusPago {
		if req.Forma == nil {
			http.Error(w, "despesa paga exige a forma de pagamento", http.StatusBadRequest)
			return
		}
		if err := h.pagar(&d, req.Pagador, *req.Forma); err != nil {
			http.Error(w, err.Error(), erros.StatusHTTP(err))
			return
		}
	} else if err := h.Repo.Salvar(&d); err != nil {
		http.Error(w, "erro ao salvar despesa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(d)
}

// pagar aplica a decisão de custeio e persiste. A variante Saldo delega ao
// motor de alocação; as demais passam pela máquina de pagamento.
func (h *Handler) pagar(d *Despesa, pagador string, dto pagamento.FormaDTO) error {
	forma, err := dto.Forma()
	if err != nil {
		return err
	}
	if forma.Meio() == pagamento.MeioSaldo {
		return h.Alocador.Alocar(d, forma.SaldoID())
	}
	if err := pagamento.Confirmar(d, forma, time.Now()); err != nil {
		return err
	}
	if pagador != "" {
		d.Pagador = pagador
	}
	return h.Repo.Salvar(d)
}

// GET /despesas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodas()
	if err != nil {
		http.Error(w, "erro ao listar despesas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// PUT /despesas/{id}/pagamento — transição Pendente→Pago.
func (h *Handler) ConfirmarPagamento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da despesa inválido", http.StatusBadRequest)
		return
	}
	d, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Despesa não encontrada", http.StatusNotFound)
		return
	}
	if d.EstaPago() {
		// Confirmação duplicada é no-op, nunca duplica custeio.
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(d)
		return
	}

	var req pagarDespesaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.pagar(d, req.Pagador, req.Forma); err != nil {
		http.Error(w, err.Error(), erros.StatusHTTP(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(d)
}

// PUT /despesas/{id}/estorno — transição Pago→Pendente.
func (h *Handler) Estornar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da despesa inválido", http.StatusBadRequest)
		return
	}
	d, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Despesa não encontrada", http.StatusNotFound)
		return
	}
	if err := pagamento.Estornar(d); err != nil {
		http.Error(w, err.Error(), erros.StatusHTTP(err))
		return
	}
	if err := h.Repo.Salvar(d); err != nil {
		http.Error(w, "erro ao estornar despesa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(d)
}

// PUT /despesas/{id} — edição de título, valor, data e observação.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da despesa inválido", http.StatusBadRequest)
		return
	}
	d, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Despesa não encontrada", http.StatusNotFound)
		return
	}

	var payload struct {
		Titulo      string          `json:"titulo"`
		Valor       decimal.Decimal `json:"valor"`
		DataDespesa time.Time       `json:"dataDespesa"`
		Observacao  string          `json:"observacao"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if payload.Valor.LessThanOrEqual(decimal.Zero) {
		http.Error(w, "valor deve ser positivo", http.StatusBadRequest)
		return
	}

	valorAnterior := d.Valor
	aplicarEdicao(d, payload.Titulo, payload.Valor, payload.DataDespesa, payload.Observacao)

	// Aumentar o valor de uma despesa já custeada por saldo precisa
	// repassar pela checagem de capacidade.
	if d.PagaComSaldoID != nil && payload.Valor.GreaterThan(valorAnterior) {
		if err := h.Alocador.Alocar(d, *d.PagaComSaldoID); err != nil {
			http.Error(w, err.Error(), erros.StatusHTTP(err))
			return
		}
	} else if err := h.Repo.Salvar(d); err != nil {
		http.Error(w, "erro ao atualizar despesa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(d)
}

// aplicarEdicao copia os campos editáveis para a despesa. A data só é
// sobrescrita quando informada; omiti-la preserva a original.
func aplicarEdicao(d *Despesa, titulo string, valor decimal.Decimal, data time.Time, observacao string) {
	d.Titulo = titulo
	d.Valor = valor
	if !data.IsZero() {
		d.DataDespesa = data
	}
	d.Observacao = observacao
}

// DELETE /despesas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da despesa inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeletarPorID(uint(id)); err != nil {
		http.Error(w, "Despesa não encontrada", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
