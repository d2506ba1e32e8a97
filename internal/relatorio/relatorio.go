// internal/relatorio/relatorio.go
package relatorio

import (
	"sort"
	"strings"
	"time"

	"github.com/VianaAdvocacia/api-escritorio/internal/despesa"
	"github.com/VianaAdvocacia/api-escritorio/internal/saldo"
	"github.com/shopspring/decimal"
)

// Filtro delimita o recorte das despesas do relatório. Campos zerados não
// filtram.
type Filtro struct {
	Inicio  time.Time
	Fim     time.Time
	Status  string
	Texto   string
	Pagador string
	Conta   string
}

// FiltrarDespesas aplica o filtro sobre o snapshot, preservando a ordem de
// entrada. Função pura: nunca muta as despesas.
func FiltrarDespesas(despesas []despesa.Despesa, f Filtro) []despesa.Despesa {
	texto := strings.ToLower(f.Texto)
	var out []despesa.Despesa
	for _, d := range despesas {
		if f.Status != "" && d.Status != f.Status {
			continue
		}
		if !f.Inicio.IsZero() && d.DataDespesa.Before(f.Inicio) {
			continue
		}
		if !f.Fim.IsZero() && d.DataDespesa.After(f.Fim) {
			continue
		}
		if texto != "" && !strings.Contains(strings.ToLower(d.Titulo), texto) {
			continue
		}
		if f.Pagador != "" && d.Pagador != f.Pagador {
			continue
		}
		if f.Conta != "" && d.Conta != f.Conta {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Linha é uma entrada da listagem agrupada: ou uma despesa avulsa, ou o
// grupo de despesas custeadas por um mesmo saldo.
type Linha struct {
	Tipo    string           `json:"tipo"` // "despesa" | "grupo"
	Despesa *despesa.Despesa `json:"despesa,omitempty"`
	Grupo   *saldo.Grupo     `json:"grupo,omitempty"`
}

// ListaAgrupada colapsa as despesas pagas com saldo em linhas de grupo, na
// posição da primeira ocorrência de cada saldo; as demais seguem avulsas na
// ordem de entrada.
func ListaAgrupada(despesas []despesa.Despesa) []Linha {
	grupos := saldo.AgruparPorSaldo(despesas)
	porSaldo := map[uint]*saldo.Grupo{}
	for i := range grupos {
		porSaldo[grupos[i].SaldoID] = &grupos[i]
	}

	var linhas []Linha
	visto := map[uint]bool{}
	for i := range despesas {
		d := despesas[i]
		if d.PagaComSaldoID == nil {
			linhas = append(linhas, Linha{Tipo: "despesa", Despesa: &despesas[i]})
			continue
		}
		id := *d.PagaComSaldoID
		if visto[id] {
			continue
		}
		visto[id] = true
		linhas = append(linhas, Linha{Tipo: "grupo", Grupo: porSaldo[id]})
	}
	return linhas
}

// TotalDia é o total de despesas de um dia do período.
type TotalDia struct {
	Data  string          `json:"data"` // AAAA-MM-DD
	Total decimal.Decimal `json:"total"`
}

// TotaisPorDia agrega os valores por dia, em ordem cronológica.
func TotaisPorDia(despesas []despesa.Despesa) []TotalDia {
	porDia := map[string]decimal.Decimal{}
	var dias []string
	for _, d := range despesas {
		dia := d.DataDespesa.Format("2006-01-02")
		if _, ok := porDia[dia]; !ok {
			dias = append(dias, dia)
		}
		porDia[dia] = porDia[dia].Add(d.Valor)
	}
	// Strings AAAA-MM-DD ordenam cronologicamente.
	sort.Strings(dias)
	out := make([]TotalDia, 0, len(dias))
	for _, dia := range dias {
		out = append(out, TotalDia{Data: dia, Total: porDia[dia]})
	}
	return out
}

// TotalMes é o total de despesas de um mês do período.
type TotalMes struct {
	Mes   string          `json:"mes"` // AAAA-MM
	Total decimal.Decimal `json:"total"`
}

// TotaisPorMes agrega os valores por mês, em ordem cronológica.
func TotaisPorMes(despesas []despesa.Despesa) []TotalMes {
	porMes := map[string]decimal.Decimal{}
	var meses []string
	for _, d := range despesas {
		mes := d.DataDespesa.Format("2006-01")
		if _, ok := porMes[mes]; !ok {
			meses = append(meses, mes)
		}
		porMes[mes] = porMes[mes].Add(d.Valor)
	}
	sort.Strings(meses)
	out := make([]TotalMes, 0, len(meses))
	for _, mes := range meses {
		out = append(out, TotalMes{Mes: mes, Total: porMes[mes]})
	}
	return out
}

// Totais é o resumo do período, separado por estado de pagamento.
type Totais struct {
	TotalPago     decimal.Decimal `json:"totalPago"`
	TotalPendente decimal.Decimal `json:"totalPendente"`
	Total         decimal.Decimal `json:"total"`
}

// TotaisDoPeriodo soma o snapshot separando pago de pendente.
func TotaisDoPeriodo(despesas []despesa.Despesa) Totais {
	t := Totais{TotalPago: decimal.Zero, TotalPendente: decimal.Zero, Total: decimal.Zero}
	for _, d := range despesas {
		if d.Status == despesa.StatusPago {
			t.TotalPago = t.TotalPago.Add(d.Valor)
		} else {
			t.TotalPendente = t.TotalPendente.Add(d.Valor)
		}
		t.Total = t.Total.Add(d.Valor)
	}
	return t
}
