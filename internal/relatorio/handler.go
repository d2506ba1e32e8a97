// internal/relatorio/handler.go
package relatorio

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/VianaAdvocacia/api-escritorio/internal/despesa"
)

// Handler expõe os relatórios de despesas.
type Handler struct {
	Despesas *despesa.Repository
}

func NewHandler(despesas *despesa.Repository) *Handler {
	return &Handler{Despesas: despesas}
}

func filtroDaQuery(r *http.Request) Filtro {
	var f Filtro
	if v := r.URL.Query().Get("inicio"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.Inicio = t
		}
	}
	if v := r.URL.Query().Get("fim"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			// Fim inclusivo: o filtro corta depois do último instante do dia.
			f.Fim = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
	}
	f.Status = r.URL.Query().Get("status")
	f.Texto = r.URL.Query().Get("q")
	f.Pagador = r.URL.Query().Get("pagador")
	f.Conta = r.URL.Query().Get("conta")
	return f
}

// GET /relatorios/despesas?inicio=&fim=&status=&q=&agrupar=
// Com agrupar=true as despesas custeadas por saldo colapsam em linhas de
// grupo; sem, a listagem sai plana.
func (h *Handler) ListarDespesas(w http.ResponseWriter, r *http.Request) {
	list, err := h.Despesas.ListarTodas()
	if err != nil {
		http.Error(w, "erro ao listar despesas", http.StatusInternalServerError)
		return
	}
	filtradas := FiltrarDespesas(list, filtroDaQuery(r))

	w.Header().Set("Content-Type", "application/json")
	if r.URL.Query().Get("agrupar") == "true" {
		_ = json.NewEncoder(w).Encode(ListaAgrupada(filtradas))
		return
	}
	_ = json.NewEncoder(w).Encode(filtradas)
}

// GET /relatorios/totais?inicio=&fim=&status=&q=
func (h *Handler) ResumoTotais(w http.ResponseWriter, r *http.Request) {
	list, err := h.Despesas.ListarTodas()
	if err != nil {
		http.Error(w, "erro ao listar despesas", http.StatusInternalServerError)
		return
	}
	filtradas := FiltrarDespesas(list, filtroDaQuery(r))

	resposta := struct {
		Totais Totais     `json:"totais"`
		PorDia []TotalDia `json:"porDia"`
		PorMes []TotalMes `json:"porMes"`
	}{
		Totais: TotaisDoPeriodo(filtradas),
		PorDia: TotaisPorDia(filtradas),
		PorMes: TotaisPorMes(filtradas),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resposta)
}
