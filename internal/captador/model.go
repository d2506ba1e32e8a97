package captador

import (
	"time"

	"gorm.io/gorm"
)

// Captador representa um indicador de clientes que recebe comissão.
type Captador struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"size:100;uniqueIndex;not null" json:"nome"`
	Cpf       string    `gorm:"size:20" json:"cpf"`
	Filial    string    `gorm:"size:100" json:"filial"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Captador{})
}
