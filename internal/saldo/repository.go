// internal/saldo/repository.go
package saldo

import (
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Saldo.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere um novo saldo (depósito explícito).
func (r *Repository) Criar(s *Saldo) error {
	return r.DB.Create(s).Error
}

// BuscarPorID busca um saldo pelo ID.
func (r *Repository) BuscarPorID(id uint) (*Saldo, error) {
	var s Saldo
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListarTodos retorna os saldos, mais recentes primeiro.
func (r *Repository) ListarTodos() ([]Saldo, error) {
	var list []Saldo
	err := r.DB.Order("data_entrada DESC").Find(&list).Error
	return list, err
}
