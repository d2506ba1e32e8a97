package financeiro

import (
	"testing"
	"time"

	"github.com/VianaAdvocacia/api-escritorio/internal/erros"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lancamentosFake struct {
	criados []Lancamento
}

func (f *lancamentosFake) Criar(l *Lancamento) error {
	f.criados = append(f.criados, *l)
	return nil
}

type clientesFake map[uint]string

func (f clientesFake) CaptadorDoCliente(clienteID uint) (string, error) {
	captador, ok := f[clienteID]
	if !ok {
		return "", erros.NaoEncontrado("cliente", clienteID)
	}
	return captador, nil
}

func dinheiro(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func lancamentoValido() *Lancamento {
	return &Lancamento{
		Titulo:         "Custas judiciais",
		Tipo:           TipoDespesa,
		Valor:          dinheiro("150.00"),
		DataVencimento: time.Now(),
	}
}

func TestCriarLancamento(t *testing.T) {
	armazem := &lancamentosFake{}
	s := NewServico(armazem, clientesFake{})

	require.NoError(t, s.Criar(lancamentoValido()))
	assert.Len(t, armazem.criados, 1)
}

func TestCriarValidacoes(t *testing.T) {
	armazem := &lancamentosFake{}
	s := NewServico(armazem, clientesFake{})

	casos := map[string]func(l *Lancamento){
		"tipo desconhecido":   func(l *Lancamento) { l.Tipo = "Empréstimo" },
		"sem título":          func(l *Lancamento) { l.Titulo = "" },
		"valor zero":          func(l *Lancamento) { l.Valor = decimal.Zero },
		"valor negativo":      func(l *Lancamento) { l.Valor = dinheiro("-5.00") },
		"sem vencimento":      func(l *Lancamento) { l.DataVencimento = time.Time{} },
		"pago sem data":       func(l *Lancamento) { l.Pago = true },
		"data sem estar pago": func(l *Lancamento) { agora := time.Now(); l.DataPagamento = &agora },
	}
	for nome, altera := range casos {
		l := lancamentoValido()
		altera(l)
		err := s.Criar(l)
		var val *erros.ValidacaoError
		assert.ErrorAs(t, err, &val, nome)
	}
	assert.Empty(t, armazem.criados)
}

func TestCriarComissaoDerivaCaptadorDoCliente(t *testing.T) {
	armazem := &lancamentosFake{}
	s := NewServico(armazem, clientesFake{7: "Carlos Captador"})

	id := uint(7)
	l := lancamentoValido()
	l.Tipo = TipoComissao
	l.ClienteID = &id

	require.NoError(t, s.Criar(l))
	assert.Equal(t, "Carlos Captador", l.CaptadorNome)
}

func TestCriarComissaoMantemCaptadorExplicito(t *testing.T) {
	s := NewServico(&lancamentosFake{}, clientesFake{7: "Carlos Captador"})

	id := uint(7)
	l := lancamentoValido()
	l.Tipo = TipoComissao
	l.ClienteID = &id
	l.CaptadorNome = "Ana Captadora"

	require.NoError(t, s.Criar(l))
	assert.Equal(t, "Ana Captadora", l.CaptadorNome)
}

func TestCriarComissaoSemFonteDeCaptador(t *testing.T) {
	armazem := &lancamentosFake{}
	s := NewServico(armazem, clientesFake{7: ""})

	// Sem captador e sem cliente.
	l := lancamentoValido()
	l.Tipo = TipoComissao
	var val *erros.ValidacaoError
	require.ErrorAs(t, s.Criar(l), &val)

	// Cliente sem captador cadastrado.
	id := uint(7)
	l = lancamentoValido()
	l.Tipo = TipoComissao
	l.ClienteID = &id
	require.ErrorAs(t, s.Criar(l), &val)

	assert.Empty(t, armazem.criados)
}
