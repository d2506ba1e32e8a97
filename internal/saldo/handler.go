// internal/saldo/handler.go
package saldo

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/VianaAdvocacia/api-escritorio/internal/despesa"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var validate = validator.New()

type criarSaldoRequest struct {
	ValorInicial   decimal.Decimal `json:"valorInicial"`
	DataEntrada    time.Time       `json:"dataEntrada"`
	Descricao      string          `json:"descricao"`
	FormaPagamento string          `json:"formaPagamento" validate:"omitempty,oneof=Pix Especie"`
	Pagador        string          `json:"pagador"`
	TipoConta      string          `json:"tipoConta" validate:"omitempty,oneof=PF PJ"`
	Conta          string          `json:"conta"`
}

// ComRestante é a visão de leitura do saldo com usado/restante derivados.
type ComRestante struct {
	Saldo
	Usado    decimal.Decimal `json:"usado"`
	Restante decimal.Decimal `json:"restante"`
}

// Handler encapsula os repositórios de saldos e despesas.
type Handler struct {
	Repo     *Repository
	Despesas *despesa.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db), Despesas: despesa.NewRepository(db)}
}

// POST /saldos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarSaldoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "forma de pagamento ou tipo de conta inválidos", http.StatusBadRequest)
		return
	}
	if req.ValorInicial.LessThanOrEqual(decimal.Zero) {
		http.Error(w, "valor inicial deve ser positivo", http.StatusBadRequest)
		return
	}
	if req.DataEntrada.IsZero() {
		req.DataEntrada = time.Now()
	}

	s := Saldo{
		ValorInicial:   req.ValorInicial,
		DataEntrada:    req.DataEntrada,
		Descricao:      req.Descricao,
		FormaPagamento: req.FormaPagamento,
		Pagador:        req.Pagador,
		TipoConta:      req.TipoConta,
		Conta:          req.Conta,
	}
	if err := h.Repo.Criar(&s); err != nil {
		http.Error(w, "erro ao criar saldo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(s)
}

// GET /saldos — cada saldo sai com usado/restante recalculados na hora.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	saldos, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "erro ao listar saldos", http.StatusInternalServerError)
		return
	}

	out := make([]ComRestante, 0, len(saldos))
	for _, s := range saldos {
		vinculadas, err := h.Despesas.ListarPorSaldo(s.ID)
		if err != nil {
			http.Error(w, "erro ao calcular restante", http.StatusInternalServerError)
			return
		}
		usado, restante := Restante(s, vinculadas)
		out = append(out, ComRestante{Saldo: s, Usado: usado, Restante: restante})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// GET /saldos/grupos — despesas custeadas por saldo, agrupadas para exibição.
func (h *Handler) ListarGrupos(w http.ResponseWriter, r *http.Request) {
	despesas, err := h.Despesas.ListarTodas()
	if err != nil {
		http.Error(w, "erro ao listar despesas", http.StatusInternalServerError)
		return
	}

	grupos := AgruparPorSaldo(despesas)
	for i := range grupos {
		if s, err := h.Repo.BuscarPorID(grupos[i].SaldoID); err == nil {
			grupos[i].Descricao = s.Descricao
		}
		if grupos[i].Descricao == "" {
			grupos[i].Descricao = "Saldo Compartilhado"
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(grupos)
}
