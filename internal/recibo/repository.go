// internal/recibo/repository.go
package recibo

import (
	"gorm.io/gorm"
)

// Repository define o acesso a dados de Recibo. As operações de escrita que
// participam da geração e da exclusão aceitam a transação em uso.
type Repository interface {
	Criar(db *gorm.DB, rec *Recibo) error
	BuscarPorID(id uint) (*Recibo, error)
	ListarTodos() ([]Recibo, error)
	Atualizar(rec *Recibo) error
	DeletarPorID(db *gorm.DB, id uint) error
}

type repositorio struct {
	db *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) Repository {
	return &repositorio{db: db}
}

func (r *repositorio) Criar(db *gorm.DB, rec *Recibo) error {
	if db == nil {
		db = r.db
	}
	return db.Create(rec).Error
}

func (r *repositorio) BuscarPorID(id uint) (*Recibo, error) {
	var rec Recibo
	if err := r.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repositorio) ListarTodos() ([]Recibo, error) {
	var list []Recibo
	err := r.db.Order("data_geracao DESC").Find(&list).Error
	return list, err
}

func (r *repositorio) Atualizar(rec *Recibo) error {
	return r.db.Save(rec).Error
}

func (r *repositorio) DeletarPorID(db *gorm.DB, id uint) error {
	if db == nil {
		db = r.db
	}
	res := db.Delete(&Recibo{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
