package cliente

import (
	"time"

	"gorm.io/gorm"
)

// Cliente representa um cliente do escritório. O campo Captador é a fonte
// estruturada para derivação de comissões; não existe inferência por texto.
type Cliente struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	NomeCompleto string         `gorm:"size:255;not null" json:"nomeCompleto"`
	CpfCnpj      string         `gorm:"size:20;uniqueIndex;not null" json:"cpfCnpj"`
	Telefone     string         `gorm:"size:20" json:"telefone"`
	Email        string         `gorm:"size:100" json:"email"`
	Captador     string         `gorm:"size:100;index" json:"captador"`
	Filial       string         `gorm:"size:100" json:"filial"`
	Status       string         `gorm:"size:20;not null;default:'ativo'" json:"status"`
	Observacao   string         `gorm:"type:text" json:"observacao"`
	DataCadastro time.Time      `gorm:"not null" json:"dataCadastro"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cliente{})
}
