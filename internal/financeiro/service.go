// internal/financeiro/service.go
package financeiro

import (
	"time"

	"github.com/VianaAdvocacia/api-escritorio/internal/erros"
	"github.com/VianaAdvocacia/api-escritorio/internal/pagamento"
	"github.com/shopspring/decimal"
)

// FonteLancamentos grava lançamentos para o serviço.
type FonteLancamentos interface {
	Criar(l *Lancamento) error
}

// LeitorClientes lê o captador estruturado de um cliente. O campo
// estruturado é a única fonte: não existe inferência por texto do título.
type LeitorClientes interface {
	CaptadorDoCliente(clienteID uint) (string, error)
}

// Servico valida e cria lançamentos do razão.
type Servico struct {
	Lancamentos FonteLancamentos
	Clientes    LeitorClientes
}

// NewServico instancia o serviço de lançamentos.
func NewServico(lancamentos FonteLancamentos, clientes LeitorClientes) *Servico {
	return &Servico{Lancamentos: lancamentos, Clientes: clientes}
}

// Criar valida o lançamento e o persiste. Comissões exigem captador: se
// ausente, tenta derivar do campo estruturado do cliente vinculado; sem
// fonte estruturada a criação é rejeitada antes de qualquer escrita.
func (s *Servico) Criar(l *Lancamento) error {
	switch l.Tipo {
	case TipoReceita, TipoDespesa, TipoComissao:
	default:
		return erros.Validacao("tipo de lançamento inválido: %q", l.Tipo)
	}
	if l.Titulo == "" {
		return erros.Validacao("título é obrigatório")
	}
	if l.Valor.LessThanOrEqual(decimal.Zero) {
		return erros.Validacao("valor deve ser positivo")
	}
	if l.DataVencimento.IsZero() {
		return erros.Validacao("data de vencimento é obrigatória")
	}
	if l.Pago != (l.DataPagamento != nil) {
		return erros.Validacao("data de pagamento deve existir se e somente se o lançamento está pago")
	}

	if l.Tipo == TipoComissao && l.CaptadorNome == "" {
		if l.ClienteID == nil {
			return erros.Validacao("comissão exige captador ou cliente com captador cadastrado")
		}
		nome, err := s.Clientes.CaptadorDoCliente(*l.ClienteID)
		if err != nil {
			return erros.DoBanco(err, "cliente", *l.ClienteID)
		}
		if nome == "" {
			return erros.Validacao("cliente não possui captador cadastrado")
		}
		l.CaptadorNome = nome
	}

	return s.Lancamentos.Criar(l)
}

// LedgerProcessos é o adaptador consumido pelo módulo de processos para a
// receita de honorários criada na transição Pendente→Pago.
type LedgerProcessos struct {
	Repo *Repository
}

// ExisteHonorarioReceita informa se o processo já possui a receita.
func (a *LedgerProcessos) ExisteHonorarioReceita(processoID uint) (bool, error) {
	return a.Repo.ExisteHonorario(processoID)
}

// CriarHonorarioReceita cria a receita de honorários já paga, espelhando o
// valor da causa do processo.
func (a *LedgerProcessos) CriarHonorarioReceita(processoID, clienteID uint, titulo string, valor decimal.Decimal, quando time.Time, forma pagamento.Forma) error {
	pid := processoID
	l := Lancamento{
		ProcessoID:       &pid,
		Titulo:           titulo,
		Tipo:             TipoReceita,
		TipoMovimentacao: "Honorários",
		Valor:            valor,
		DataVencimento:   quando,
		EhHonorario:      true,
	}
	if clienteID != 0 {
		cid := clienteID
		l.ClienteID = &cid
	}
	l.AplicarPagamento(quando, forma)
	return a.Repo.Criar(&l)
}
