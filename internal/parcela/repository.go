// internal/parcela/repository.go
package parcela

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Parcela.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// CriarEmLote insere o cronograma completo de uma vez.
func (r *Repository) CriarEmLote(parcelas []Parcela) error {
	return r.DB.Create(&parcelas).Error
}

// BuscarPorID busca uma parcela pelo ID.
func (r *Repository) BuscarPorID(id uint) (*Parcela, error) {
	var p Parcela
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListarPorProcesso retorna o cronograma do processo em ordem de número.
func (r *Repository) ListarPorProcesso(processoID uint) ([]Parcela, error) {
	var list []Parcela
	err := r.DB.Where("processo_id = ?", processoID).
		Order("numero ASC").
		Find(&list).Error
	return list, err
}

// ContarPorProcesso conta as parcelas já geradas para o processo.
func (r *Repository) ContarPorProcesso(processoID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&Parcela{}).
		Where("processo_id = ?", processoID).
		Count(&n).Error
	return n, err
}

// ListarVencendoAte retorna as parcelas pendentes com vencimento até o limite.
func (r *Repository) ListarVencendoAte(limite time.Time) ([]Parcela, error) {
	var list []Parcela
	err := r.DB.Where("pago = ? AND data_vencimento <= ?", false, limite).
		Order("data_vencimento ASC").
		Find(&list).Error
	return list, err
}

// Atualizar salva alterações em uma parcela existente.
func (r *Repository) Atualizar(p *Parcela) error {
	return r.DB.Save(p).Error
}
