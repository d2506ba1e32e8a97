// internal/parcela/scheduler.go
package parcela

import (
	"time"

	"github.com/VianaAdvocacia/api-escritorio/internal/erros"
	"github.com/VianaAdvocacia/api-escritorio/internal/pagamento"
	"github.com/shopspring/decimal"
)

// QtdPadrao é a quantidade de parcelas mensais geradas por processo.
const QtdPadrao = 4

// DadosBeneficio é o recorte do processo necessário para gerar o cronograma.
type DadosBeneficio struct {
	ValorCausa decimal.Decimal
	Concedido  bool
}

// LeitorProcessos lê os dados de benefício de um processo.
type LeitorProcessos interface {
	DadosBeneficio(processoID uint) (DadosBeneficio, error)
}

// FonteParcelas persiste o cronograma gerado.
type FonteParcelas interface {
	ContarPorProcesso(processoID uint) (int64, error)
	CriarEmLote(parcelas []Parcela) error
}

// Scheduler gera o cronograma de parcelas de processos concedidos.
type Scheduler struct {
	Processos LeitorProcessos
	Parcelas  FonteParcelas
}

// NewScheduler instancia o gerador de cronogramas.
func NewScheduler(processos LeitorProcessos, parcelas FonteParcelas) *Scheduler {
	return &Scheduler{Processos: processos, Parcelas: parcelas}
}

// Dividir fatia o valor em qtd cotas de duas casas decimais. As primeiras
// qtd-1 cotas são o valor truncado da divisão; a última absorve o resto do
// arredondamento, de modo que a soma reproduz o valor exato.
func Dividir(valor decimal.Decimal, qtd int) []decimal.Decimal {
	base := valor.Div(decimal.NewFromInt(int64(qtd))).RoundDown(2)
	cotas := make([]decimal.Decimal, qtd)
	acumulado := decimal.Zero
	for i := 0; i < qtd-1; i++ {
		cotas[i] = base
		acumulado = acumulado.Add(base)
	}
	cotas[qtd-1] = valor.Sub(acumulado)
	return cotas
}

// Gerar cria o cronograma de QtdPadrao parcelas mensais a partir de inicio.
// Só processos concedidos geram cronograma, e apenas uma vez: regeneração é
// rejeitada para preservar baixas já registradas.
func (s *Scheduler) Gerar(processoID uint, inicio time.Time) ([]Parcela, error) {
	dados, err := s.Processos.DadosBeneficio(processoID)
	if err != nil {
		return nil, erros.DoBanco(err, "processo", processoID)
	}
	if !dados.Concedido {
		return nil, erros.TransicaoInvalida("processo não concedido não gera parcelas")
	}
	if dados.ValorCausa.LessThanOrEqual(decimal.Zero) {
		return nil, erros.Validacao("valor da causa deve ser positivo para gerar parcelas")
	}

	existentes, err := s.Parcelas.ContarPorProcesso(processoID)
	if err != nil {
		return nil, err
	}
	if existentes > 0 {
		return nil, erros.TransicaoInvalida("processo %d já possui cronograma de parcelas", processoID)
	}

	cotas := Dividir(dados.ValorCausa, QtdPadrao)
	parcelas := make([]Parcela, QtdPadrao)
	for i := 0; i < QtdPadrao; i++ {
		parcelas[i] = Parcela{
			ProcessoID:     processoID,
			Numero:         i + 1,
			DataVencimento: inicio.AddDate(0, i, 0),
			Valor:          cotas[i],
			Destino:        DestinoCliente,
		}
	}
	if err := s.Parcelas.CriarEmLote(parcelas); err != nil {
		return nil, err
	}
	return parcelas, nil
}

// AlternarPagamento alterna a baixa da parcela. Parcelas com destino
// Escritório exigem forma de custeio na baixa; o saldo interno não custeia
// parcelas. Parcelas do cliente alternam sem forma.
func AlternarPagamento(p *Parcela, dto *pagamento.FormaDTO, agora time.Time) error {
	if p.EstaPago() {
		return pagamento.Estornar(p)
	}
	if p.Destino == DestinoEscritorio {
		if dto == nil {
			return erros.Validacao("parcela do escritório exige a forma de pagamento na baixa")
		}
		forma, err := dto.Forma()
		if err != nil {
			return err
		}
		if forma.Meio() == pagamento.MeioSaldo {
			return erros.Validacao("parcelas não aceitam custeio por saldo interno")
		}
		return pagamento.Confirmar(p, forma, agora)
	}
	return pagamento.Confirmar(p, pagamento.EmEspecie(), agora)
}
