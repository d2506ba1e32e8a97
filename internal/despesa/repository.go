// internal/despesa/repository.go
package despesa

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Despesa.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Salvar insere ou atualiza a despesa (Save usa a PK quando presente).
func (r *Repository) Salvar(d *Despesa) error {
	return r.DB.Save(d).Error
}

// BuscarPorID busca uma despesa pelo ID.
func (r *Repository) BuscarPorID(id uint) (*Despesa, error) {
	var d Despesa
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// ListarTodas retorna as despesas, mais recentes primeiro.
func (r *Repository) ListarTodas() ([]Despesa, error) {
	var list []Despesa
	err := r.DB.Order("data_despesa DESC").Find(&list).Error
	return list, err
}

// ListarPorPeriodo retorna as despesas com data dentro do intervalo.
func (r *Repository) ListarPorPeriodo(inicio, fim time.Time) ([]Despesa, error) {
	var list []Despesa
	err := r.DB.
		Where("data_despesa >= ? AND data_despesa <= ?", inicio, fim).
		Order("data_despesa DESC").
		Find(&list).Error
	return list, err
}

// ListarPorSaldo retorna as despesas custeadas por um saldo específico.
func (r *Repository) ListarPorSaldo(saldoID uint) ([]Despesa, error) {
	var list []Despesa
	err := r.DB.
		Where("paga_com_saldo_id = ?", saldoID).
		Order("data_despesa ASC").
		Find(&list).Error
	return list, err
}

// DeletarPorID apaga a despesa; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&Despesa{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
