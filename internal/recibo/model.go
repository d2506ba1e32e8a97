// internal/recibo/model.go
package recibo

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AssinaturaPendente = "pendente"
	AssinaturaAssinado = "assinado"
)

// Recibo agrupa comissões de um captador para assinatura. O valor total é
// congelado na geração: edições ou exclusões posteriores dos lançamentos não
// recalculam recibos já emitidos.
type Recibo struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	Numero           string          `gorm:"size:36;uniqueIndex;not null" json:"numero"`
	CaptadorNome     string          `gorm:"size:100;not null;index" json:"captadorNome"`
	CpfCaptador      string          `gorm:"size:20" json:"cpfCaptador"`
	ValorTotal       decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0" json:"valorTotal"`
	DataGeracao      time.Time       `gorm:"not null" json:"dataGeracao"`
	StatusAssinatura string          `gorm:"size:20;not null;default:'pendente'" json:"statusAssinatura"`
	ArquivoURL       string          `gorm:"size:500" json:"arquivoUrl"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Recibo{})
}
