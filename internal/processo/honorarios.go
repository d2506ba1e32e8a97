// internal/processo/honorarios.go
package processo

import (
	"time"

	"github.com/VianaAdvocacia/api-escritorio/internal/erros"
	"github.com/VianaAdvocacia/api-escritorio/internal/pagamento"
	"github.com/shopspring/decimal"
)

// FonteProcessos lê e grava processos para o serviço de honorários.
type FonteProcessos interface {
	BuscarPorID(id uint) (*Processo, error)
	Atualizar(p *Processo) error
}

// LedgerHonorarios grava a receita de honorários no razão financeiro.
type LedgerHonorarios interface {
	ExisteHonorarioReceita(processoID uint) (bool, error)
	CriarHonorarioReceita(processoID, clienteID uint, titulo string, valor decimal.Decimal, quando time.Time, forma pagamento.Forma) error
}

// ServicoHonorarios aplica a transição de honorários Pendente→Pago.
type ServicoHonorarios struct {
	Processos FonteProcessos
	Ledger    LedgerHonorarios
}

// NewServicoHonorarios instancia o serviço de honorários.
func NewServicoHonorarios(processos FonteProcessos, ledger LedgerHonorarios) *ServicoHonorarios {
	return &ServicoHonorarios{Processos: processos, Ledger: ledger}
}

// MarcarPago marca os honorários do processo como pagos e cria a receita
// correspondente no razão, exatamente uma vez. Só processos concedidos
// liberam a transição; marcar honorários já pagos é no-op e não duplica a
// receita. A transição não tem estorno.
func (s *ServicoHonorarios) MarcarPago(processoID uint, dto pagamento.FormaDTO, agora time.Time) (*Processo, error) {
	p, err := s.Processos.BuscarPorID(processoID)
	if err != nil {
		return nil, erros.DoBanco(err, "processo", processoID)
	}
	if p.HonorariosPagos {
		return p, nil
	}
	if !p.Concedido() {
		return nil, erros.TransicaoInvalida("honorários exigem processo com status %q", StatusConcedido)
	}

	forma, err := dto.Forma()
	if err != nil {
		return nil, err
	}
	if forma.Meio() == pagamento.MeioSaldo {
		return nil, erros.Validacao("honorários não aceitam custeio por saldo interno")
	}

	existe, err := s.Ledger.ExisteHonorarioReceita(p.ID)
	if err != nil {
		return nil, err
	}
	if !existe {
		titulo := "Honorários - " + p.Titulo
		if err := s.Ledger.CriarHonorarioReceita(p.ID, p.ClienteID, titulo, p.ValorCausa, agora, forma); err != nil {
			return nil, err
		}
	}

	p.HonorariosPagos = true
	p.StatusPagamento = PagamentoPago
	p.DataPagamentoHonorarios = &agora
	p.FormaPagamentoHonorarios = string(forma.Meio())
	if forma.Meio() == pagamento.MeioConta {
		p.RecebedorHonorarios = forma.Recebedor()
		p.ContaHonorarios = forma.Conta()
		p.TipoContaHonorarios = forma.TipoConta()
	}
	if err := s.Processos.Atualizar(p); err != nil {
		return nil, err
	}
	return p, nil
}

// AtualizarStatusPagamento atualiza o acompanhamento agregado de pagamento
// do processo (Pendente ou Parcial). "Pago" não é aceito aqui: essa
// transição só existe pela confirmação de honorários, que exige processo
// concedido, captura o custeio e cria a receita no razão.
func (s *ServicoHonorarios) AtualizarStatusPagamento(processoID uint, status string) (*Processo, error) {
	switch status {
	case PagamentoPendente, PagamentoParcial:
	case PagamentoPago:
		return nil, erros.TransicaoInvalida("status Pago exige a confirmação de honorários")
	default:
		return nil, erros.Validacao("status de pagamento inválido: %q", status)
	}
	p, err := s.Processos.BuscarPorID(processoID)
	if err != nil {
		return nil, erros.DoBanco(err, "processo", processoID)
	}
	p.StatusPagamento = status
	if err := s.Processos.Atualizar(p); err != nil {
		return nil, err
	}
	return p, nil
}
