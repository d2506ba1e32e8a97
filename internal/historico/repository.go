// internal/historico/repository.go
package historico

import (
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Evento.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere um novo evento.
func (r *Repository) Criar(e *Evento) error {
	return r.DB.Create(e).Error
}

// ListarPorProcesso retorna a linha do tempo do processo, mais recente primeiro.
func (r *Repository) ListarPorProcesso(processoID uint) ([]Evento, error) {
	var list []Evento
	err := r.DB.Where("processo_id = ?", processoID).
		Order("criado_em DESC").
		Find(&list).Error
	return list, err
}
