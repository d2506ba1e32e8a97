package saldo

import (
	"testing"
	"time"

	"github.com/VianaAdvocacia/api-escritorio/internal/despesa"
	"github.com/VianaAdvocacia/api-escritorio/internal/erros"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saldosFake map[uint]*Saldo

func (f saldosFake) BuscarPorID(id uint) (*Saldo, error) {
	s, ok := f[id]
	if !ok {
		return nil, erros.NaoEncontrado("saldo", id)
	}
	return s, nil
}

type despesasFake struct {
	registros map[uint]*despesa.Despesa
}

func novaDespesasFake() *despesasFake {
	return &despesasFake{registros: map[uint]*despesa.Despesa{}}
}

func (f *despesasFake) ListarPorSaldo(saldoID uint) ([]despesa.Despesa, error) {
	var out []despesa.Despesa
	for _, d := range f.registros {
		if d.PagaComSaldoID != nil && *d.PagaComSaldoID == saldoID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *despesasFake) Salvar(d *despesa.Despesa) error {
	copia := *d
	f.registros[d.ID] = &copia
	return nil
}

func dinheiro(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func novaDespesa(id uint, valor string) *despesa.Despesa {
	return &despesa.Despesa{
		ID:          id,
		Titulo:      "custas",
		Valor:       dinheiro(valor),
		DataDespesa: time.Now(),
		Status:      despesa.StatusPendente,
	}
}

func TestAlocarDebitaEConsomeTudo(t *testing.T) {
	saldos := saldosFake{1: {ID: 1, ValorInicial: dinheiro("1000.00")}}
	despesas := novaDespesasFake()
	engine := NewEngine(saldos, despesas)

	d1 := novaDespesa(10, "400.00")
	require.NoError(t, engine.Alocar(d1, 1))
	assert.Equal(t, despesa.StatusPago, d1.Status)
	assert.Equal(t, despesa.PagadorEscritorio, d1.Pagador)
	assert.Equal(t, "Saldo", d1.FormaPagamento)
	require.NotNil(t, d1.PagaComSaldoID)
	assert.Equal(t, uint(1), *d1.PagaComSaldoID)

	// 700 não cabe nos 600 restantes.
	d2 := novaDespesa(11, "700.00")
	err := engine.Alocar(d2, 1)
	var insuf *erros.SaldoInsuficienteError
	require.ErrorAs(t, err, &insuf)
	assert.True(t, insuf.Restante.Equal(dinheiro("600.00")))
	assert.True(t, insuf.Solicitado.Equal(dinheiro("700.00")))

	// A rejeição não muta a despesa nem o grupo do saldo.
	assert.Equal(t, despesa.StatusPendente, d2.Status)
	assert.Nil(t, d2.PagaComSaldoID)
	vinculadas, _ := despesas.ListarPorSaldo(1)
	assert.Len(t, vinculadas, 1)

	// 600 exatos consomem o saldo por completo.
	d3 := novaDespesa(12, "600.00")
	require.NoError(t, engine.Alocar(d3, 1))

	s := *saldos[1]
	todas, _ := despesas.ListarPorSaldo(1)
	usado, restante := Restante(s, todas)
	assert.True(t, usado.Equal(dinheiro("1000.00")))
	assert.True(t, restante.IsZero())
}

func TestAlocarSaldoInexistente(t *testing.T) {
	engine := NewEngine(saldosFake{}, novaDespesasFake())
	err := engine.Alocar(novaDespesa(1, "50.00"), 99)
	var nenc *erros.NaoEncontradoError
	assert.ErrorAs(t, err, &nenc)
}

func TestAlocarValorNaoPositivo(t *testing.T) {
	engine := NewEngine(saldosFake{}, novaDespesasFake())
	assert.Error(t, engine.Alocar(novaDespesa(1, "0"), 1))
}

func TestAlocarReatribuicaoIgnoraAPropriaDespesa(t *testing.T) {
	saldos := saldosFake{1: {ID: 1, ValorInicial: dinheiro("500.00")}}
	despesas := novaDespesasFake()
	engine := NewEngine(saldos, despesas)

	d := novaDespesa(10, "300.00")
	require.NoError(t, engine.Alocar(d, 1))

	// Aumentar para 450 ainda cabe: os 300 antigos da própria despesa não
	// contam como uso de terceiros.
	d.Valor = dinheiro("450.00")
	require.NoError(t, engine.Alocar(d, 1))

	// 501 não cabe.
	d.Valor = dinheiro("501.00")
	var insuf *erros.SaldoInsuficienteError
	assert.ErrorAs(t, engine.Alocar(d, 1), &insuf)
}

func TestRestanteEhDerivado(t *testing.T) {
	s := Saldo{ID: 1, ValorInicial: dinheiro("250.00")}
	id := uint(1)
	outra := uint(2)
	lista := []despesa.Despesa{
		{ID: 5, Valor: dinheiro("100.00"), PagaComSaldoID: &id},
		{ID: 6, Valor: dinheiro("30.00"), PagaComSaldoID: &outra},
		{ID: 7, Valor: dinheiro("20.00")},
	}
	usado, restante := Restante(s, lista)
	assert.True(t, usado.Equal(dinheiro("100.00")))
	assert.True(t, restante.Equal(dinheiro("150.00")))
}

func TestAgruparPorSaldo(t *testing.T) {
	a, b := uint(1), uint(2)
	d1 := despesa.Despesa{ID: 1, Valor: dinheiro("10.00"), PagaComSaldoID: &a, DataDespesa: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}
	d2 := despesa.Despesa{ID: 2, Valor: dinheiro("20.00")}
	d3 := despesa.Despesa{ID: 3, Valor: dinheiro("30.00"), PagaComSaldoID: &b, DataDespesa: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)}
	d4 := despesa.Despesa{ID: 4, Valor: dinheiro("40.00"), PagaComSaldoID: &a, DataDespesa: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)}

	grupos := AgruparPorSaldo([]despesa.Despesa{d1, d2, d3, d4})
	require.Len(t, grupos, 2)

	// Ordem da primeira ocorrência: saldo 1 antes do saldo 2.
	assert.Equal(t, a, grupos[0].SaldoID)
	assert.Equal(t, b, grupos[1].SaldoID)
	assert.True(t, grupos[0].Total.Equal(dinheiro("50.00")))
	assert.Len(t, grupos[0].Despesas, 2)
	assert.Equal(t, d4.DataDespesa, grupos[0].UltimaData)
	assert.True(t, grupos[1].Total.Equal(dinheiro("30.00")))

	// Mesmo snapshot, mesmo resultado.
	denovo := AgruparPorSaldo([]despesa.Despesa{d1, d2, d3, d4})
	assert.Equal(t, grupos, denovo)
}
