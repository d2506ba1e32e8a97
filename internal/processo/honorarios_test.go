package processo

import (
	"testing"
	"time"

	"github.com/VianaAdvocacia/api-escritorio/internal/erros"
	"github.com/VianaAdvocacia/api-escritorio/internal/pagamento"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type processosFake map[uint]*Processo

func (f processosFake) BuscarPorID(id uint) (*Processo, error) {
	p, ok := f[id]
	if !ok {
		return nil, erros.NaoEncontrado("processo", id)
	}
	return p, nil
}

func (f processosFake) Atualizar(p *Processo) error {
	f[p.ID] = p
	return nil
}

type ledgerFake struct {
	existente bool
	criadas   int
	titulo    string
	valor     decimal.Decimal
}

func (l *ledgerFake) ExisteHonorarioReceita(processoID uint) (bool, error) {
	return l.existente, nil
}

func (l *ledgerFake) CriarHonorarioReceita(processoID, clienteID uint, titulo string, valor decimal.Decimal, quando time.Time, forma pagamento.Forma) error {
	l.criadas++
	l.existente = true
	l.titulo = titulo
	l.valor = valor
	return nil
}

func dinheiro(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func processoConcedido() *Processo {
	return &Processo{
		ID:         1,
		ClienteID:  9,
		Titulo:     "Aposentadoria Rural",
		Status:     StatusConcedido,
		ValorCausa: dinheiro("12000.00"),
	}
}

func TestMarcarPagoCriaReceitaUmaVez(t *testing.T) {
	processos := processosFake{1: processoConcedido()}
	ledger := &ledgerFake{}
	s := NewServicoHonorarios(processos, ledger)

	dto := pagamento.FormaDTO{Meio: "Especie"}
	p, err := s.MarcarPago(1, dto, time.Now())
	require.NoError(t, err)

	assert.True(t, p.HonorariosPagos)
	assert.Equal(t, PagamentoPago, p.StatusPagamento)
	require.NotNil(t, p.DataPagamentoHonorarios)
	assert.Equal(t, 1, ledger.criadas)
	assert.Equal(t, "Honorários - Aposentadoria Rural", ledger.titulo)
	assert.True(t, ledger.valor.Equal(dinheiro("12000.00")))

	// Marcar de novo é no-op e não duplica a receita.
	_, err = s.MarcarPago(1, dto, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, ledger.criadas)
}

func TestMarcarPagoExigeConcessao(t *testing.T) {
	p := processoConcedido()
	p.Status = "Em Andamento"
	processos := processosFake{1: p}
	ledger := &ledgerFake{}
	s := NewServicoHonorarios(processos, ledger)

	_, err := s.MarcarPago(1, pagamento.FormaDTO{Meio: "Especie"}, time.Now())
	var tra *erros.TransicaoInvalidaError
	require.ErrorAs(t, err, &tra)

	assert.False(t, p.HonorariosPagos)
	assert.Zero(t, ledger.criadas)
}

func TestMarcarPagoNaoDuplicaReceitaExistente(t *testing.T) {
	// Receita já presente no razão, marcação ainda pendente no processo.
	processos := processosFake{1: processoConcedido()}
	ledger := &ledgerFake{existente: true}
	s := NewServicoHonorarios(processos, ledger)

	p, err := s.MarcarPago(1, pagamento.FormaDTO{Meio: "Especie"}, time.Now())
	require.NoError(t, err)
	assert.True(t, p.HonorariosPagos)
	assert.Zero(t, ledger.criadas)
}

func TestMarcarPagoRejeitaSaldo(t *testing.T) {
	processos := processosFake{1: processoConcedido()}
	ledger := &ledgerFake{}
	s := NewServicoHonorarios(processos, ledger)

	_, err := s.MarcarPago(1, pagamento.FormaDTO{Meio: "Saldo", SaldoID: 2}, time.Now())
	var val *erros.ValidacaoError
	require.ErrorAs(t, err, &val)
	assert.Zero(t, ledger.criadas)
}

func TestMarcarPagoGuardaCusteioEmConta(t *testing.T) {
	processos := processosFake{1: processoConcedido()}
	s := NewServicoHonorarios(processos, &ledgerFake{})

	dto := pagamento.FormaDTO{Meio: "Conta", Recebedor: "Dr. Viana", Conta: "55-1", TipoConta: "PJ"}
	p, err := s.MarcarPago(1, dto, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "Conta", p.FormaPagamentoHonorarios)
	assert.Equal(t, "Dr. Viana", p.RecebedorHonorarios)
	assert.Equal(t, "PJ", p.TipoContaHonorarios)
}

func TestMarcarPagoProcessoInexistente(t *testing.T) {
	s := NewServicoHonorarios(processosFake{}, &ledgerFake{})
	_, err := s.MarcarPago(77, pagamento.FormaDTO{Meio: "Especie"}, time.Now())
	var nenc *erros.NaoEncontradoError
	assert.ErrorAs(t, err, &nenc)
}

func TestAtualizarStatusPagamento(t *testing.T) {
	processos := processosFake{1: processoConcedido()}
	s := NewServicoHonorarios(processos, &ledgerFake{})

	p, err := s.AtualizarStatusPagamento(1, PagamentoParcial)
	require.NoError(t, err)
	assert.Equal(t, PagamentoParcial, p.StatusPagamento)

	_, err = s.AtualizarStatusPagamento(1, "Quitado")
	var val *erros.ValidacaoError
	assert.ErrorAs(t, err, &val)
}

func TestAtualizarStatusPagamentoNaoAtalhaParaPago(t *testing.T) {
	// "Pago" não existe por este caminho nem em processo concedido: só a
	// confirmação de honorários captura custeio e gera a receita.
	p := processoConcedido()
	p.Status = "Em Andamento"
	p.StatusPagamento = PagamentoPendente
	processos := processosFake{1: p}
	ledger := &ledgerFake{}
	s := NewServicoHonorarios(processos, ledger)

	_, err := s.AtualizarStatusPagamento(1, PagamentoPago)
	var tra *erros.TransicaoInvalidaError
	require.ErrorAs(t, err, &tra)
	assert.Equal(t, PagamentoPendente, p.StatusPagamento)
	assert.False(t, p.HonorariosPagos)
	assert.Zero(t, ledger.criadas)

	// Mesmo concedido, o atalho continua fechado.
	p.Status = StatusConcedido
	_, err = s.AtualizarStatusPagamento(1, PagamentoPago)
	require.ErrorAs(t, err, &tra)
	assert.Equal(t, PagamentoPendente, p.StatusPagamento)
	assert.Zero(t, ledger.criadas)
}
