// internal/processo/repository.go
package processo

import (
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Processo.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere um novo processo.
func (r *Repository) Criar(p *Processo) error {
	return r.DB.Create(p).Error
}

// BuscarPorID busca um processo com seu cronograma de parcelas.
func (r *Repository) BuscarPorID(id uint) (*Processo, error) {
	var p Processo
	if err := r.DB.Preload("Parcelas").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListarTodos retorna os processos, opcionalmente filtrados por cliente e
// status.
func (r *Repository) ListarTodos(clienteID uint, status string) ([]Processo, error) {
	q := r.DB.Preload("Parcelas").Order("created_at DESC")
	if clienteID != 0 {
		q = q.Where("cliente_id = ?", clienteID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var list []Processo
	err := q.Find(&list).Error
	return list, err
}

// Atualizar salva alterações em um processo existente.
func (r *Repository) Atualizar(p *Processo) error {
	return r.DB.Save(p).Error
}

// DeletarPorID apaga o processo; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&Processo{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
