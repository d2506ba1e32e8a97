package usuario

import (
	"time"

	"gorm.io/gorm"
)

// Usuario representa um membro do escritório com acesso ao sistema.
type Usuario struct {
	ID                    uint           `gorm:"primaryKey" json:"id"`
	Nome                  string         `gorm:"size:100;not null" json:"nome"`
	Sobrenome             string         `gorm:"size:100" json:"sobrenome"`
	Email                 string         `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Telefone              string         `gorm:"size:20" json:"telefone"`
	Senha                 string         `gorm:"size:255;not null" json:"-"`
	IsAdmin               bool           `gorm:"default:false" json:"isAdmin"`
	PrecisaRedefinirSenha bool           `gorm:"default:false" json:"-"`
	CreatedAt             time.Time      `json:"createdAt"`
	UpdatedAt             time.Time      `json:"updatedAt"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
