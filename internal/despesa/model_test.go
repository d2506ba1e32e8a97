package despesa

import (
	"testing"
	"time"

	"github.com/VianaAdvocacia/api-escritorio/internal/pagamento"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAplicarPagamentoEmConta(t *testing.T) {
	d := Despesa{Titulo: "custas", Valor: decimal.New(100, 0), Status: StatusPendente}

	require.NoError(t, pagamento.Confirmar(&d, pagamento.EmConta("Maria", "123-4", "PF"), time.Now()))
	assert.Equal(t, StatusPago, d.Status)
	assert.Equal(t, "Conta", d.FormaPagamento)
	assert.Equal(t, "Maria", d.Recebedor)
	assert.Equal(t, "PF", d.TipoConta)
}

func TestEstornoLiberaVinculoComSaldo(t *testing.T) {
	id := uint(3)
	d := Despesa{
		Titulo:         "custas",
		Valor:          decimal.New(100, 0),
		Status:         StatusPago,
		Pagador:        PagadorEscritorio,
		FormaPagamento: "Saldo",
		PagaComSaldoID: &id,
	}

	require.NoError(t, pagamento.Estornar(&d))
	assert.Equal(t, StatusPendente, d.Status)
	assert.Empty(t, d.Pagador)
	assert.Empty(t, d.FormaPagamento)
	// Sem o vínculo, a capacidade volta ao saldo na próxima leitura.
	assert.Nil(t, d.PagaComSaldoID)
}

func TestAplicarEdicaoPreservaDataOmitida(t *testing.T) {
	original := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	id := uint(3)
	d := Despesa{
		Titulo:         "custas",
		Valor:          decimal.New(100, 0),
		DataDespesa:    original,
		PagaComSaldoID: &id,
	}

	// Edição sem data (inclusive a que aumenta o valor de despesa custeada
	// por saldo) mantém a data original.
	aplicarEdicao(&d, "custas corrigidas", decimal.New(150, 0), time.Time{}, "ajuste")
	assert.Equal(t, "custas corrigidas", d.Titulo)
	assert.True(t, d.Valor.Equal(decimal.New(150, 0)))
	assert.Equal(t, original, d.DataDespesa)
	assert.Equal(t, "ajuste", d.Observacao)

	nova := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	aplicarEdicao(&d, "custas corrigidas", decimal.New(150, 0), nova, "ajuste")
	assert.Equal(t, nova, d.DataDespesa)
}
