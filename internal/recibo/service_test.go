package recibo

import (
	"database/sql"
	"testing"

	"github.com/VianaAdvocacia/api-escritorio/internal/erros"
	"github.com/VianaAdvocacia/api-escritorio/internal/financeiro"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type bancoFake struct{}

func (bancoFake) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	return fc(nil)
}

type recibosFake struct {
	registros map[uint]*Recibo
	proximoID uint
}

func novaRecibosFake() *recibosFake {
	return &recibosFake{registros: map[uint]*Recibo{}, proximoID: 1}
}

func (f *recibosFake) Criar(db *gorm.DB, rec *Recibo) error {
	rec.ID = f.proximoID
	f.proximoID++
	copia := *rec
	f.registros[rec.ID] = &copia
	return nil
}

func (f *recibosFake) BuscarPorID(id uint) (*Recibo, error) {
	rec, ok := f.registros[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *rec
	return &copia, nil
}

func (f *recibosFake) ListarTodos() ([]Recibo, error) {
	var out []Recibo
	for _, rec := range f.registros {
		out = append(out, *rec)
	}
	return out, nil
}

func (f *recibosFake) Atualizar(rec *Recibo) error {
	copia := *rec
	f.registros[rec.ID] = &copia
	return nil
}

func (f *recibosFake) DeletarPorID(db *gorm.DB, id uint) error {
	if _, ok := f.registros[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.registros, id)
	return nil
}

type ledgerFake struct {
	registros map[uint]*financeiro.Lancamento
}

func novaLedgerFake() *ledgerFake {
	return &ledgerFake{registros: map[uint]*financeiro.Lancamento{}}
}

func (f *ledgerFake) ListarPorIDs(db *gorm.DB, ids []uint) ([]financeiro.Lancamento, error) {
	var out []financeiro.Lancamento
	for _, id := range ids {
		if l, ok := f.registros[id]; ok {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *ledgerFake) VincularRecibo(db *gorm.DB, ids []uint, reciboID uint) error {
	for _, id := range ids {
		if l, ok := f.registros[id]; ok {
			rid := reciboID
			l.ReciboID = &rid
		}
	}
	return nil
}

func (f *ledgerFake) DesvincularRecibo(db *gorm.DB, reciboID uint) error {
	for _, l := range f.registros {
		if l.ReciboID != nil && *l.ReciboID == reciboID {
			l.ReciboID = nil
		}
	}
	return nil
}

func dinheiro(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func comissao(id uint, captador, valor string) *financeiro.Lancamento {
	return &financeiro.Lancamento{
		ID:           id,
		Titulo:       "Comissão",
		Tipo:         financeiro.TipoComissao,
		Valor:        dinheiro(valor),
		CaptadorNome: captador,
	}
}

func novoServicoTeste() (*Servico, *recibosFake, *ledgerFake) {
	recibos := novaRecibosFake()
	ledger := novaLedgerFake()
	return NewServico(bancoFake{}, recibos, ledger), recibos, ledger
}

func TestGerarCongelaTotal(t *testing.T) {
	s, recibos, ledger := novoServicoTeste()
	ledger.registros[1] = comissao(1, "Carlos", "100.00")
	ledger.registros[2] = comissao(2, "Carlos", "150.00")
	ledger.registros[3] = comissao(3, "Carlos", "50.00")

	rec, err := s.Gerar("Carlos", "111.222.333-44", []uint{1, 2, 3})
	require.NoError(t, err)
	assert.True(t, rec.ValorTotal.Equal(dinheiro("300.00")))
	assert.Equal(t, "Carlos", rec.CaptadorNome)
	assert.Equal(t, "111.222.333-44", rec.CpfCaptador)
	assert.Equal(t, AssinaturaPendente, rec.StatusAssinatura)
	assert.NotEmpty(t, rec.Numero)

	// Os três lançamentos saem carimbados.
	for _, id := range []uint{1, 2, 3} {
		require.NotNil(t, ledger.registros[id].ReciboID)
		assert.Equal(t, rec.ID, *ledger.registros[id].ReciboID)
	}

	// Excluir um lançamento depois não recalcula o total congelado.
	delete(ledger.registros, 2)
	depois, err := recibos.BuscarPorID(rec.ID)
	require.NoError(t, err)
	assert.True(t, depois.ValorTotal.Equal(dinheiro("300.00")))
}

func TestGerarRejeitaJaVinculado(t *testing.T) {
	s, recibos, ledger := novoServicoTeste()
	ledger.registros[1] = comissao(1, "Carlos", "100.00")
	outro := uint(9)
	ledger.registros[2] = comissao(2, "Carlos", "150.00")
	ledger.registros[2].ReciboID = &outro

	_, err := s.Gerar("Carlos", "", []uint{1, 2})
	var val *erros.ValidacaoError
	require.ErrorAs(t, err, &val)

	// Nada é criado nem carimbado na rejeição.
	assert.Empty(t, recibos.registros)
	assert.Nil(t, ledger.registros[1].ReciboID)
	assert.Equal(t, outro, *ledger.registros[2].ReciboID)
}

func TestGerarRejeitaCaptadoresDistintos(t *testing.T) {
	s, recibos, ledger := novoServicoTeste()
	ledger.registros[1] = comissao(1, "Carlos", "100.00")
	ledger.registros[2] = comissao(2, "Ana", "150.00")

	_, err := s.Gerar("", "", []uint{1, 2})
	var val *erros.ValidacaoError
	require.ErrorAs(t, err, &val)
	assert.Empty(t, recibos.registros)
}

func TestGerarRejeitaNaoComissao(t *testing.T) {
	s, _, ledger := novoServicoTeste()
	l := comissao(1, "Carlos", "100.00")
	l.Tipo = financeiro.TipoReceita
	ledger.registros[1] = l

	_, err := s.Gerar("Carlos", "", []uint{1})
	var val *erros.ValidacaoError
	assert.ErrorAs(t, err, &val)
}

func TestGerarRejeitaSelecaoInvalida(t *testing.T) {
	s, _, ledger := novoServicoTeste()
	ledger.registros[1] = comissao(1, "Carlos", "100.00")

	var val *erros.ValidacaoError
	_, err := s.Gerar("Carlos", "", nil)
	require.ErrorAs(t, err, &val)

	_, err = s.Gerar("Carlos", "", []uint{1, 99})
	require.ErrorAs(t, err, &val)
}

func TestDeletarDesvinculaEPreserva(t *testing.T) {
	s, recibos, ledger := novoServicoTeste()
	ledger.registros[1] = comissao(1, "Carlos", "100.00")
	ledger.registros[2] = comissao(2, "Carlos", "150.00")

	rec, err := s.Gerar("Carlos", "", []uint{1, 2})
	require.NoError(t, err)

	require.NoError(t, s.Deletar(rec.ID))

	// O recibo some; os lançamentos sobrevivem e voltam a ficar livres.
	_, err = recibos.BuscarPorID(rec.ID)
	assert.Error(t, err)
	require.Contains(t, ledger.registros, uint(1))
	require.Contains(t, ledger.registros, uint(2))
	assert.Nil(t, ledger.registros[1].ReciboID)
	assert.Nil(t, ledger.registros[2].ReciboID)

	// Livres, podem compor um novo recibo.
	_, err = s.Gerar("Carlos", "", []uint{1, 2})
	assert.NoError(t, err)
}

func TestDeletarInexistente(t *testing.T) {
	s, _, _ := novoServicoTeste()
	var nenc *erros.NaoEncontradoError
	assert.ErrorAs(t, s.Deletar(42), &nenc)
}

func TestAssinarIdempotente(t *testing.T) {
	s, _, ledger := novoServicoTeste()
	ledger.registros[1] = comissao(1, "Carlos", "100.00")
	rec, err := s.Gerar("Carlos", "", []uint{1})
	require.NoError(t, err)

	assinado, err := s.Assinar(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, AssinaturaAssinado, assinado.StatusAssinatura)

	denovo, err := s.Assinar(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, AssinaturaAssinado, denovo.StatusAssinatura)
}

func TestAnexarArquivo(t *testing.T) {
	s, _, ledger := novoServicoTeste()
	ledger.registros[1] = comissao(1, "Carlos", "100.00")
	rec, err := s.Gerar("Carlos", "", []uint{1})
	require.NoError(t, err)

	com, err := s.AnexarArquivo(rec.ID, "https://arquivos/recibo.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://arquivos/recibo.pdf", com.ArquivoURL)

	var val *erros.ValidacaoError
	_, err = s.AnexarArquivo(rec.ID, "")
	assert.ErrorAs(t, err, &val)
}
