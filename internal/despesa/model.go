// internal/despesa/model.go
package despesa

import (
	"time"

	"github.com/VianaAdvocacia/api-escritorio/internal/pagamento"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusPago     = "Pago"
	StatusPendente = "Pendente"

	// PagadorEscritorio é o valor sentinela de pagador quando a despesa
	// é custeada por um saldo interno, em vez de um pagador externo.
	PagadorEscritorio = "Escritório"
)

// Despesa representa uma despesa do escritório (não vinculada a processo).
// Os dois modos de custeio — pagador externo e saldo interno — são
// mutuamente exclusivos: com PagaComSaldoID preenchido o status é Pago e o
// pagador é o sentinela do escritório.
type Despesa struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Titulo         string          `gorm:"size:255;not null" json:"titulo"`
	Valor          decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0" json:"valor"`
	DataDespesa    time.Time       `gorm:"not null;index" json:"dataDespesa"`
	Status         string          `gorm:"size:20;not null;default:'Pendente';index" json:"status"`
	Observacao     string          `gorm:"type:text" json:"observacao"`
	Pagador        string          `gorm:"size:100" json:"pagador"`
	TipoConta      string          `gorm:"size:4" json:"tipoConta"` // PF | PJ
	Conta          string          `gorm:"size:100" json:"conta"`
	FormaPagamento string          `gorm:"size:50" json:"formaPagamento"`
	Recebedor      string          `gorm:"size:100" json:"recebedor"`
	PagaComSaldoID *uint           `gorm:"index" json:"pagaComSaldoId"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Despesa{})
}

// EstaPago informa se a despesa já foi paga.
func (d *Despesa) EstaPago() bool { return d.Status == StatusPago }

// AplicarPagamento grava os metadados de custeio para pagador externo ou
// espécie. O custeio por saldo interno não passa por aqui: é aplicado pelo
// motor de alocação, que precisa verificar a capacidade restante.
func (d *Despesa) AplicarPagamento(quando time.Time, f pagamento.Forma) {
	d.Status = StatusPago
	d.FormaPagamento = string(f.Meio())
	if f.Meio() == pagamento.MeioConta {
		d.Recebedor = f.Recebedor()
		d.Conta = f.Conta()
		d.TipoConta = f.TipoConta()
	}
}

// LimparPagamento estorna a despesa para Pendente. Limpar PagaComSaldoID
// devolve a capacidade ao saldo automaticamente (o restante é derivado).
func (d *Despesa) LimparPagamento() {
	d.Status = StatusPendente
	d.Pagador = ""
	d.TipoConta = ""
	d.Conta = ""
	d.FormaPagamento = ""
	d.Recebedor = ""
	d.PagaComSaldoID = nil
}
