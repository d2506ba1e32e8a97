// internal/historico/model.go
package historico

import (
	"time"

	"gorm.io/gorm"
)

// Evento é uma entrada da linha do tempo de um processo.
type Evento struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProcessoID uint      `gorm:"not null;index" json:"processoId"`
	Acao       string    `gorm:"size:100;not null" json:"acao"`
	Detalhes   string    `gorm:"type:text" json:"detalhes"`
	Usuario    string    `gorm:"size:100" json:"usuario"`
	CriadoEm   time.Time `gorm:"not null;index" json:"criadoEm"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Evento{})
}
