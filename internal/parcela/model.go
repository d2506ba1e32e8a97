// internal/parcela/model.go
package parcela

import (
	"time"

	"github.com/VianaAdvocacia/api-escritorio/internal/pagamento"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	// DestinoCliente: a parcela do benefício repassa ao cliente; a baixa de
	// pagamento não exige forma de custeio.
	DestinoCliente = "Cliente"
	// DestinoEscritorio: a parcela fica com o escritório; a baixa exige uma
	// forma de custeio externa.
	DestinoEscritorio = "Escritório"
)

// Parcela é uma fração mensal do valor da causa de um processo concedido.
// O cronograma é gerado uma única vez por processo; número e vencimento são
// fixados na geração.
type Parcela struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	ProcessoID     uint            `gorm:"not null;index" json:"processoId"`
	Numero         int             `gorm:"not null" json:"numero"`
	DataVencimento time.Time       `gorm:"not null" json:"dataVencimento"`
	Valor          decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0" json:"valor"`
	Destino        string          `gorm:"size:20;not null;default:'Cliente'" json:"destino"`
	Pago           bool            `gorm:"not null;default:false" json:"pago"`
	DataPagamento  *time.Time      `json:"dataPagamento"`
	FormaPagamento string          `gorm:"size:50" json:"formaPagamento"`
	Recebedor      string          `gorm:"size:100" json:"recebedor"`
	TipoConta      string          `gorm:"size:4" json:"tipoConta"`
	Conta          string          `gorm:"size:100" json:"conta"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Parcela{})
}

// EstaPago informa se a parcela já foi baixada.
func (p *Parcela) EstaPago() bool { return p.Pago }

// AplicarPagamento grava data e metadados de custeio.
func (p *Parcela) AplicarPagamento(quando time.Time, f pagamento.Forma) {
	p.Pago = true
	p.DataPagamento = &quando
	p.FormaPagamento = string(f.Meio())
	if f.Meio() == pagamento.MeioConta {
		p.Recebedor = f.Recebedor()
		p.Conta = f.Conta()
		p.TipoConta = f.TipoConta()
	}
}

// LimparPagamento estorna a parcela para pendente.
func (p *Parcela) LimparPagamento() {
	p.Pago = false
	p.DataPagamento = nil
	p.FormaPagamento = ""
	p.Recebedor = ""
	p.TipoConta = ""
	p.Conta = ""
}
