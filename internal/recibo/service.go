// internal/recibo/service.go
package recibo

import (
	"database/sql"
	"time"

	"github.com/VianaAdvocacia/api-escritorio/internal/erros"
	"github.com/VianaAdvocacia/api-escritorio/internal/financeiro"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transacionador executa uma função dentro de uma transação. Satisfeito por
// *gorm.DB.
type Transacionador interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

// LedgerComissoes é o recorte do razão usado na geração e exclusão de
// recibos. As operações aceitam a transação em uso.
type LedgerComissoes interface {
	ListarPorIDs(db *gorm.DB, ids []uint) ([]financeiro.Lancamento, error)
	VincularRecibo(db *gorm.DB, ids []uint, reciboID uint) error
	DesvincularRecibo(db *gorm.DB, reciboID uint) error
}

// Servico gera, assina e exclui recibos de comissão.
type Servico struct {
	Banco       Transacionador
	Recibos     Repository
	Lancamentos LedgerComissoes
}

// NewServico instancia o serviço de recibos.
func NewServico(banco Transacionador, recibos Repository, lancamentos LedgerComissoes) *Servico {
	return &Servico{Banco: banco, Recibos: recibos, Lancamentos: lancamentos}
}

// Gerar cria um recibo para o conjunto de comissões informado e carimba os
// lançamentos, tudo em uma transação. Todos os lançamentos devem ser
// comissões do mesmo captador e ainda sem recibo. O total é somado e
// congelado aqui: edições ou exclusões posteriores dos lançamentos não o
// recalculam.
func (s *Servico) Gerar(captador, cpfCaptador string, lancamentoIDs []uint) (*Recibo, error) {
	if len(lancamentoIDs) == 0 {
		return nil, erros.Validacao("recibo exige ao menos um lançamento")
	}

	var rec Recibo
	err := s.Banco.Transaction(func(tx *gorm.DB) error {
		lancs, err := s.Lancamentos.ListarPorIDs(tx, lancamentoIDs)
		if err != nil {
			return err
		}
		if len(lancs) != len(lancamentoIDs) {
			return erros.Validacao("um ou mais lançamentos não existem")
		}

		total := decimal.Zero
		for i := range lancs {
			l := &lancs[i]
			if l.Tipo != financeiro.TipoComissao {
				return erros.Validacao("lançamento %d não é uma comissão", l.ID)
			}
			if l.ReciboID != nil {
				return erros.Validacao("lançamento %d já pertence a um recibo", l.ID)
			}
			if captador == "" {
				captador = l.CaptadorNome
			}
			if l.CaptadorNome != captador {
				return erros.Validacao("lançamentos de captadores distintos não compõem o mesmo recibo")
			}
			total = total.Add(l.Valor)
		}

		rec = Recibo{
			Numero:           uuid.NewString(),
			CaptadorNome:     captador,
			CpfCaptador:      cpfCaptador,
			ValorTotal:       total,
			DataGeracao:      time.Now(),
			StatusAssinatura: AssinaturaPendente,
		}
		if err := s.Recibos.Criar(tx, &rec); err != nil {
			return err
		}
		return s.Lancamentos.VincularRecibo(tx, lancamentoIDs, rec.ID)
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Assinar marca o recibo como assinado. Assinar de novo é no-op.
func (s *Servico) Assinar(id uint) (*Recibo, error) {
	rec, err := s.Recibos.BuscarPorID(id)
	if err != nil {
		return nil, erros.DoBanco(err, "recibo", id)
	}
	if rec.StatusAssinatura == AssinaturaAssinado {
		return rec, nil
	}
	rec.StatusAssinatura = AssinaturaAssinado
	if err := s.Recibos.Atualizar(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// AnexarArquivo guarda a URL do documento digitalizado do recibo.
func (s *Servico) AnexarArquivo(id uint, url string) (*Recibo, error) {
	if url == "" {
		return nil, erros.Validacao("URL do arquivo é obrigatória")
	}
	rec, err := s.Recibos.BuscarPorID(id)
	if err != nil {
		return nil, erros.DoBanco(err, "recibo", id)
	}
	rec.ArquivoURL = url
	if err := s.Recibos.Atualizar(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Deletar apaga o recibo e desvincula seus lançamentos na mesma transação.
// Os lançamentos em si são preservados e voltam a poder compor novos recibos.
func (s *Servico) Deletar(id uint) error {
	return s.Banco.Transaction(func(tx *gorm.DB) error {
		if err := s.Lancamentos.DesvincularRecibo(tx, id); err != nil {
			return err
		}
		if err := s.Recibos.DeletarPorID(tx, id); err != nil {
			return erros.DoBanco(err, "recibo", id)
		}
		return nil
	})
}
