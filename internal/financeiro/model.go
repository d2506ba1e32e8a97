// internal/financeiro/model.go
package financeiro

import (
	"time"

	"github.com/VianaAdvocacia/api-escritorio/internal/pagamento"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TipoReceita  = "Receita"
	TipoDespesa  = "Despesa"
	TipoComissao = "Comissão"
)

// Lancamento é uma movimentação monetária do razão, opcionalmente vinculada
// a um processo e/ou cliente. Lançamentos sem vínculo ("avulsos") pertencem
// ao próprio razão. DataPagamento está presente se e somente se Pago; os
// metadados de custeio só têm significado com Pago = true.
type Lancamento struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	ProcessoID       *uint           `gorm:"index" json:"processoId"`
	ClienteID        *uint           `gorm:"index" json:"clienteId"`
	Titulo           string          `gorm:"size:255;not null" json:"titulo"`
	Tipo             string          `gorm:"size:20;not null;index" json:"tipo"` // Receita | Despesa | Comissão
	TipoMovimentacao string          `gorm:"size:50" json:"tipoMovimentacao"`    // ex.: "Honorários", "Comissao", "Outros"
	Valor            decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0" json:"valor"`
	DataVencimento   time.Time       `gorm:"not null;index" json:"dataVencimento"`
	Pago             bool            `gorm:"not null;default:false;index" json:"pago"`
	DataPagamento    *time.Time      `json:"dataPagamento"`
	FormaPagamento   string          `gorm:"size:50" json:"formaPagamento"`
	Recebedor        string          `gorm:"size:100" json:"recebedor"`
	TipoConta        string          `gorm:"size:4" json:"tipoConta"`
	Conta            string          `gorm:"size:100" json:"conta"`
	EhHonorario      bool            `gorm:"not null;default:false;index" json:"ehHonorario"`
	CaptadorNome     string          `gorm:"size:100;index" json:"captadorNome"`
	ReciboID         *uint           `gorm:"index" json:"reciboId"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Lancamento{})
}

// EstaPago informa se o lançamento já foi pago.
func (l *Lancamento) EstaPago() bool { return l.Pago }

// AplicarPagamento grava data e metadados de custeio.
func (l *Lancamento) AplicarPagamento(quando time.Time, f pagamento.Forma) {
	l.Pago = true
	l.DataPagamento = &quando
	l.FormaPagamento = string(f.Meio())
	if f.Meio() == pagamento.MeioConta {
		l.Recebedor = f.Recebedor()
		l.Conta = f.Conta()
		l.TipoConta = f.TipoConta()
	}
}

// LimparPagamento zera data e metadados de custeio.
func (l *Lancamento) LimparPagamento() {
	l.Pago = false
	l.DataPagamento = nil
	l.FormaPagamento = ""
	l.Recebedor = ""
	l.TipoConta = ""
	l.Conta = ""
}
