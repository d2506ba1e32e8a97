// internal/saldo/model.go
package saldo

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Saldo é um bolso de caixa interno disponível para custear despesas do
// escritório. O valor inicial é imutável após a criação; o usado e o
// restante são sempre derivados das despesas vinculadas, nunca gravados,
// para que a invariante de conservação valha mecanicamente.
type Saldo struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	ValorInicial   decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"valorInicial"`
	DataEntrada    time.Time       `gorm:"not null;index" json:"dataEntrada"`
	Descricao      string          `gorm:"size:255" json:"descricao"`
	FormaPagamento string          `gorm:"size:50" json:"formaPagamento"` // Pix | Especie
	Pagador        string          `gorm:"size:100" json:"pagador"`
	TipoConta      string          `gorm:"size:4" json:"tipoConta"`
	Conta          string          `gorm:"size:100" json:"conta"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Saldo{})
}
