// internal/parcela/handler.go
package parcela

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/VianaAdvocacia/api-escritorio/internal/auth"
	"github.com/VianaAdvocacia/api-escritorio/internal/erros"
	"github.com/VianaAdvocacia/api-escritorio/internal/notificacao"
	"github.com/VianaAdvocacia/api-escritorio/internal/pagamento"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// LeitorAviso lê os dados do processo e do cliente para compor o aviso de
// cobrança. Implementado pelo módulo de processos.
type LeitorAviso interface {
	DadosAviso(processoID uint) (processoTitulo, clienteNome string, err error)
}

// Historiador registra eventos na linha do tempo do processo.
type Historiador interface {
	Registrar(processoID uint, acao, detalhes, usuario string)
}

// Handler encapsula o repositório, o gerador de cronograma e o notificador.
type Handler struct {
	Repo        *Repository
	Scheduler   *Scheduler
	Notificador *notificacao.Notificador
	Avisos      LeitorAviso
	Historico   Historiador
}

func NewHandler(repo *Repository, scheduler *Scheduler, notificador *notificacao.Notificador, avisos LeitorAviso, historico Historiador) *Handler {
	return &Handler{Repo: repo, Scheduler: scheduler, Notificador: notificador, Avisos: avisos, Historico: historico}
}

// POST /processos/{id}/parcelas — gera o cronograma do processo.
func (h *Handler) Gerar(w http.ResponseWriter, r *http.Request) {
	processoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do processo inválido", http.StatusBadRequest)
		return
	}

	var payload struct {
		Inicio time.Time `json:"inicio"`
	}
	// Corpo vazio é aceito; o cronograma começa hoje.
	_ = json.NewDecoder(r.Body).Decode(&payload)
	if payload.Inicio.IsZero() {
		payload.Inicio = time.Now()
	}

	parcelas, err := h.Scheduler.Gerar(uint(processoID), payload.Inicio)
	if err != nil {
		http.Error(w, err.Error(), erros.StatusHTTP(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(parcelas)
}

// GET /processos/{id}/parcelas
func (h *Handler) ListarPorProcesso(w http.ResponseWriter, r *http.Request) {
	processoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do processo inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repo.ListarPorProcesso(uint(processoID))
	if err != nil {
		http.Error(w, "erro ao listar parcelas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// PUT /parcelas/{id} — edição independente de valor, destino e vencimento
// após a geração. O número é fixado na geração.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Parcela não encontrada", http.StatusNotFound)
		return
	}

	var payload struct {
		Destino        string           `json:"destino"`
		DataVencimento time.Time        `json:"dataVencimento"`
		Valor          *decimal.Decimal `json:"valor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if payload.Destino != "" {
		if payload.Destino != DestinoCliente && payload.Destino != DestinoEscritorio {
			http.Error(w, "destino deve ser Cliente ou Escritório", http.StatusBadRequest)
			return
		}
		p.Destino = payload.Destino
	}
	if !payload.DataVencimento.IsZero() {
		p.DataVencimento = payload.DataVencimento
	}
	if payload.Valor != nil {
		if payload.Valor.LessThanOrEqual(decimal.Zero) {
			http.Error(w, "valor deve ser positivo", http.StatusBadRequest)
			return
		}
		p.Valor = *payload.Valor
	}

	if err := h.Repo.Atualizar(p); err != nil {
		http.Error(w, "erro ao atualizar parcela", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// PUT /parcelas/{id}/pagamento — alterna a baixa da parcela.
func (h *Handler) AlternarPagamento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Parcela não encontrada", http.StatusNotFound)
		return
	}

	var payload struct {
		Forma *pagamento.FormaDTO `json:"forma"`
	}
	// Corpo vazio é aceito para parcelas do cliente.
	_ = json.NewDecoder(r.Body).Decode(&payload)

	if err := AlternarPagamento(p, payload.Forma, time.Now()); err != nil {
		http.Error(w, err.Error(), erros.StatusHTTP(err))
		return
	}
	if err := h.Repo.Atualizar(p); err != nil {
		http.Error(w, "erro ao salvar parcela", http.StatusInternalServerError)
		return
	}

	acao := "baixa de parcela"
	if !p.Pago {
		acao = "estorno de parcela"
	}
	h.Historico.Registrar(p.ProcessoID, acao, fmt.Sprintf("parcela %d", p.Numero), auth.NomeUsuario(r.Context()))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// GET /parcelas/vencendo?ate=AAAA-MM-DD — parcelas pendentes com vencimento
// até a data limite (hoje, por padrão). Alimenta o disparo de avisos.
func (h *Handler) ListarVencendo(w http.ResponseWriter, r *http.Request) {
	limite := time.Now()
	if v := r.URL.Query().Get("ate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			http.Error(w, "data limite inválida, use AAAA-MM-DD", http.StatusBadRequest)
			return
		}
		limite = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	list, err := h.Repo.ListarVencendoAte(limite)
	if err != nil {
		http.Error(w, "erro ao listar parcelas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// POST /parcelas/{id}/notificar — dispara o aviso de cobrança via webhook.
func (h *Handler) Notificar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Parcela não encontrada", http.StatusNotFound)
		return
	}
	if !h.Notificador.Configurado() {
		http.Error(w, "webhook de notificação não configurado", http.StatusServiceUnavailable)
		return
	}

	titulo, clienteNome, err := h.Avisos.DadosAviso(p.ProcessoID)
	if err != nil {
		e := erros.DoBanco(err, "processo", p.ProcessoID)
		http.Error(w, e.Error(), erros.StatusHTTP(e))
		return
	}

	aviso := notificacao.AvisoParcela{
		ProcessoID:     p.ProcessoID,
		ProcessoTitulo: titulo,
		ClienteNome:    clienteNome,
		NumeroParcela:  p.Numero,
		Valor:          p.Valor.StringFixed(2),
		DataVencimento: p.DataVencimento,
	}
	if err := h.Notificador.AvisarParcela(r.Context(), aviso); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
